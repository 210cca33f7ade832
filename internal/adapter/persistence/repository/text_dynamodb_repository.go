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

const defaultTextsTableName = "texts"

type textItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Content   string `dynamodbav:"content"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TextDynamoRepository persists Text entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TextDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITextRepository = (*TextDynamoRepository)(nil)

func NewTextDynamoRepository(ddb *dynamodb.Client) *TextDynamoRepository {
	return &TextDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEXTS_TABLE", defaultTextsTableName),
	}
}

func (r *TextDynamoRepository) List(ctx context.Context) ([]entities.Text, error) {
	texts := []entities.Text{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []textItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			texts = append(texts, fromTextItem(it))
		}
	}
	return texts, nil
}

func (r *TextDynamoRepository) GetByID(ctx context.Context, id string) (entities.Text, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Text{}, err
	}
	if len(out.Item) == 0 {
		return entities.Text{}, nil
	}

	var it textItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Text{}, err
	}
	return fromTextItem(it), nil
}

func (r *TextDynamoRepository) Create(ctx context.Context, t entities.Text) (entities.Text, error) {
	av, err := attributevalue.MarshalMap(toTextItem(t))
	if err != nil {
		return entities.Text{}, err
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
		return entities.Text{}, err
	}
	return t, nil
}

func (r *TextDynamoRepository) Update(ctx context.Context, t entities.Text) (entities.Text, error) {
	av, err := attributevalue.MarshalMap(toTextItem(t))
	if err != nil {
		return entities.Text{}, err
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
			return entities.Text{}, nil
		}
		return entities.Text{}, err
	}
	return t, nil
}

func (r *TextDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toTextItem(t entities.Text) textItem {
	return textItem{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: timeToString(t.CreatedAt),
		UpdatedAt: timeToString(t.UpdatedAt),
	}
}

func fromTextItem(it textItem) entities.Text {
	return entities.Text{
		ID:        it.ID,
		Title:     it.Title,
		Content:   it.Content,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
