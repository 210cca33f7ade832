package repository

import (
	"context"

	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNotesTableName = "notes"

// pinned is stored as a native DynamoDB BOOL, not the "true"/"false" text the
// legacy schema carried.
type noteItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Content   string `dynamodbav:"content"`
	Category  string `dynamodbav:"category"`
	Pinned    bool   `dynamodbav:"pinned"`
	Color     string `dynamodbav:"color"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// NoteDynamoRepository persists Note entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type NoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INoteRepository = (*NoteDynamoRepository)(nil)

func NewNoteDynamoRepository(ddb *dynamodb.Client) *NoteDynamoRepository {
	return &NoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTES_TABLE", defaultNotesTableName),
	}
}

func (r *NoteDynamoRepository) List(ctx context.Context) ([]entities.Note, error) {
	notes := []entities.Note{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []noteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			notes = append(notes, fromNoteItem(it))
		}
	}
	return notes, nil
}

func (r *NoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Note, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Note{}, err
	}
	if len(out.Item) == 0 {
		return entities.Note{}, nil
	}

	var it noteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Note{}, err
	}
	return fromNoteItem(it), nil
}

func (r *NoteDynamoRepository) Create(ctx context.Context, n entities.Note) (entities.Note, error) {
	av, err := attributevalue.MarshalMap(toNoteItem(n))
	if err != nil {
		return entities.Note{}, err
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
		return entities.Note{}, err
	}
	return n, nil
}

func (r *NoteDynamoRepository) Update(ctx context.Context, n entities.Note) (entities.Note, error) {
	av, err := attributevalue.MarshalMap(toNoteItem(n))
	if err != nil {
		return entities.Note{}, err
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
			return entities.Note{}, nil
		}
		return entities.Note{}, err
	}
	return n, nil
}

func (r *NoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toNoteItem(n entities.Note) noteItem {
	return noteItem{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		Pinned:    n.Pinned,
		Color:     n.Color,
		CreatedAt: timeToString(n.CreatedAt),
		UpdatedAt: timeToString(n.UpdatedAt),
	}
}

func fromNoteItem(it noteItem) entities.Note {
	return entities.Note{
		ID:        it.ID,
		Title:     it.Title,
		Content:   it.Content,
		Category:  it.Category,
		Pinned:    it.Pinned,
		Color:     it.Color,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
