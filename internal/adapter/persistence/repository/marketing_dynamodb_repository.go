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

const defaultMarketingTableName = "marketing"

type marketingItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Type        string `dynamodbav:"type"`
	Status      string `dynamodbav:"status"`
	Budget      int64  `dynamodbav:"budget"`
	Spent       int64  `dynamodbav:"spent"`
	StartDate   string `dynamodbav:"start_date"`
	EndDate     string `dynamodbav:"end_date"`
	Description string `dynamodbav:"description"`
	Notes       string `dynamodbav:"notes"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// MarketingDynamoRepository persists Marketing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MarketingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMarketingRepository = (*MarketingDynamoRepository)(nil)

func NewMarketingDynamoRepository(ddb *dynamodb.Client) *MarketingDynamoRepository {
	return &MarketingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MARKETING_TABLE", defaultMarketingTableName),
	}
}

func (r *MarketingDynamoRepository) List(ctx context.Context) ([]entities.Marketing, error) {
	campaigns := []entities.Marketing{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []marketingItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			campaigns = append(campaigns, fromMarketingItem(it))
		}
	}
	return campaigns, nil
}

func (r *MarketingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Marketing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Marketing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Marketing{}, nil
	}

	var it marketingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Marketing{}, err
	}
	return fromMarketingItem(it), nil
}

func (r *MarketingDynamoRepository) Create(ctx context.Context, m entities.Marketing) (entities.Marketing, error) {
	av, err := attributevalue.MarshalMap(toMarketingItem(m))
	if err != nil {
		return entities.Marketing{}, err
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
		return entities.Marketing{}, err
	}
	return m, nil
}

func (r *MarketingDynamoRepository) Update(ctx context.Context, m entities.Marketing) (entities.Marketing, error) {
	av, err := attributevalue.MarshalMap(toMarketingItem(m))
	if err != nil {
		return entities.Marketing{}, err
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
			return entities.Marketing{}, nil
		}
		return entities.Marketing{}, err
	}
	return m, nil
}

func (r *MarketingDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toMarketingItem(m entities.Marketing) marketingItem {
	return marketingItem{
		ID:          m.ID,
		Name:        m.Name,
		Type:        string(m.Type),
		Status:      string(m.Status),
		Budget:      m.Budget,
		Spent:       m.Spent,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		Notes:       m.Notes,
		CreatedAt:   timeToString(m.CreatedAt),
	}
}

func fromMarketingItem(it marketingItem) entities.Marketing {
	return entities.Marketing{
		ID:          it.ID,
		Name:        it.Name,
		Type:        entities.MarketingType(it.Type),
		Status:      entities.MarketingStatus(it.Status),
		Budget:      it.Budget,
		Spent:       it.Spent,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		Description: it.Description,
		Notes:       it.Notes,
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
