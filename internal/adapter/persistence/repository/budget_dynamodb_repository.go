package repository

import (
	"context"
	"errors"
	"strconv"

	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName  = "budgets"
	defaultCountersTableName = "counters"

	// proposalCounterKey identifies the proposal-number counter item inside
	// the counters table.
	proposalCounterKey  = "budgets_proposal_id"
	proposalCounterAttr = "seq"
)

var errProposalCounterCorrupt = errors.New("proposal counter item has no numeric seq attribute")

type budgetLineItem struct {
	ID          string  `dynamodbav:"id"`
	Quantity    int     `dynamodbav:"quantity"`
	Description string  `dynamodbav:"description"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Warranty    string  `dynamodbav:"warranty"`
}

type budgetItem struct {
	ID           string           `dynamodbav:"id"`
	ProposalID   int              `dynamodbav:"proposal_id"`
	ClientID     string           `dynamodbav:"client_id"`
	ClientName   string           `dynamodbav:"client_name"`
	Title        string           `dynamodbav:"title"`
	Status       string           `dynamodbav:"status"`
	TotalValue   int64            `dynamodbav:"total_value"`
	Currency     string           `dynamodbav:"currency"`
	ValidityDate string           `dynamodbav:"validity_date"`
	PaymentTerms string           `dynamodbav:"payment_terms"`
	Notes        string           `dynamodbav:"notes"`
	Items        []budgetLineItem `dynamodbav:"items"`
	CreatedAt    string           `dynamodbav:"created_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - budgets: PK id (string)
//   - counters: PK id (string); proposal numbers come from an atomic ADD on
//     the counter item, so two concurrent creations can never be handed the
//     same number.

type BudgetDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	budgets := []entities.Budget{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			budgets = append(budgets, fromBudgetItem(it))
		}
	}
	return budgets, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NextProposalID atomically increments and returns the proposal counter.
// The first allocation against a fresh table yields 1.
func (r *BudgetDynamoRepository) NextProposalID(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: proposalCounterKey},
		},
		UpdateExpression: aws.String("ADD #seq :incr"),
		ExpressionAttributeNames: map[string]string{
			"#seq": proposalCounterAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":incr": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes[proposalCounterAttr].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errProposalCounterCorrupt
	}
	return strconv.Atoi(n.Value)
}

// PeekNextProposalID reads what NextProposalID would return without consuming
// the number. Purely informational: a concurrent creation can still take it.
func (r *BudgetDynamoRepository) PeekNextProposalID(ctx context.Context) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: proposalCounterKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 1, nil
	}

	n, ok := out.Item[proposalCounterAttr].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errProposalCounterCorrupt
	}
	cur, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, err
	}
	return cur + 1, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, budgetLineItem{
			ID:          it.ID,
			Quantity:    it.Quantity,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Warranty:    it.Warranty,
		})
	}
	return budgetItem{
		ID:           b.ID,
		ProposalID:   b.ProposalID,
		ClientID:     b.ClientID,
		ClientName:   b.ClientName,
		Title:        b.Title,
		Status:       string(b.Status),
		TotalValue:   b.TotalValue,
		Currency:     b.Currency,
		ValidityDate: b.ValidityDate,
		PaymentTerms: b.PaymentTerms,
		Notes:        b.Notes,
		Items:        items,
		CreatedAt:    timeToString(b.CreatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.BudgetItem{
			ID:          li.ID,
			Quantity:    li.Quantity,
			Description: li.Description,
			UnitPrice:   li.UnitPrice,
			Warranty:    li.Warranty,
		})
	}
	return entities.Budget{
		ID:           it.ID,
		ProposalID:   it.ProposalID,
		ClientID:     it.ClientID,
		ClientName:   it.ClientName,
		Title:        it.Title,
		Status:       entities.BudgetStatus(it.Status),
		TotalValue:   it.TotalValue,
		Currency:     it.Currency,
		ValidityDate: it.ValidityDate,
		PaymentTerms: it.PaymentTerms,
		Notes:        it.Notes,
		Items:        items,
		CreatedAt:    timeFromString(it.CreatedAt),
	}
}
