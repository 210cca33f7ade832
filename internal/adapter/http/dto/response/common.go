package response

// SuccessResponse acknowledges operations that return no resource body,
// such as deletes.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NextIDResponse carries the next sequential proposal number without
// consuming it.
type NextIDResponse struct {
	NextID int `json:"nextId"`
}
