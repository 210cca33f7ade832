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

const defaultFinancesTableName = "finances"

type financeItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Type        string `dynamodbav:"type"`
	Category    string `dynamodbav:"category"`
	Amount      int64  `dynamodbav:"amount"`
	Date        string `dynamodbav:"date"`
	Notes       string `dynamodbav:"notes"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// FinanceDynamoRepository persists Finance entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type FinanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinanceRepository = (*FinanceDynamoRepository)(nil)

func NewFinanceDynamoRepository(ddb *dynamodb.Client) *FinanceDynamoRepository {
	return &FinanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINANCES_TABLE", defaultFinancesTableName),
	}
}

func (r *FinanceDynamoRepository) List(ctx context.Context) ([]entities.Finance, error) {
	finances := []entities.Finance{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []financeItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			finances = append(finances, fromFinanceItem(it))
		}
	}
	return finances, nil
}

func (r *FinanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Finance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Finance{}, err
	}
	if len(out.Item) == 0 {
		return entities.Finance{}, nil
	}

	var it financeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Finance{}, err
	}
	return fromFinanceItem(it), nil
}

func (r *FinanceDynamoRepository) Create(ctx context.Context, f entities.Finance) (entities.Finance, error) {
	av, err := attributevalue.MarshalMap(toFinanceItem(f))
	if err != nil {
		return entities.Finance{}, err
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
		return entities.Finance{}, err
	}
	return f, nil
}

func (r *FinanceDynamoRepository) Update(ctx context.Context, f entities.Finance) (entities.Finance, error) {
	av, err := attributevalue.MarshalMap(toFinanceItem(f))
	if err != nil {
		return entities.Finance{}, err
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
			return entities.Finance{}, nil
		}
		return entities.Finance{}, err
	}
	return f, nil
}

func (r *FinanceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toFinanceItem(f entities.Finance) financeItem {
	return financeItem{
		ID:          f.ID,
		Description: f.Description,
		Type:        string(f.Type),
		Category:    f.Category,
		Amount:      f.Amount,
		Date:        f.Date,
		Notes:       f.Notes,
		CreatedAt:   timeToString(f.CreatedAt),
	}
}

func fromFinanceItem(it financeItem) entities.Finance {
	return entities.Finance{
		ID:          it.ID,
		Description: it.Description,
		Type:        entities.FinanceType(it.Type),
		Category:    it.Category,
		Amount:      it.Amount,
		Date:        it.Date,
		Notes:       it.Notes,
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
