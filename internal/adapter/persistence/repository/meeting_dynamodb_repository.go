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

const defaultMeetingsTableName = "meetings"

type meetingItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	Description  string `dynamodbav:"description"`
	Date         string `dynamodbav:"date"`
	Time         string `dynamodbav:"time"`
	Duration     string `dynamodbav:"duration"`
	Participants string `dynamodbav:"participants"`
	Location     string `dynamodbav:"location"`
	Status       string `dynamodbav:"status"`
	Notes        string `dynamodbav:"notes"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// MeetingDynamoRepository persists Meeting entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MeetingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMeetingRepository = (*MeetingDynamoRepository)(nil)

func NewMeetingDynamoRepository(ddb *dynamodb.Client) *MeetingDynamoRepository {
	return &MeetingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEETINGS_TABLE", defaultMeetingsTableName),
	}
}

func (r *MeetingDynamoRepository) List(ctx context.Context) ([]entities.Meeting, error) {
	meetings := []entities.Meeting{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []meetingItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			meetings = append(meetings, fromMeetingItem(it))
		}
	}
	return meetings, nil
}

func (r *MeetingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Meeting, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Meeting{}, err
	}
	if len(out.Item) == 0 {
		return entities.Meeting{}, nil
	}

	var it meetingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Meeting{}, err
	}
	return fromMeetingItem(it), nil
}

func (r *MeetingDynamoRepository) Create(ctx context.Context, m entities.Meeting) (entities.Meeting, error) {
	av, err := attributevalue.MarshalMap(toMeetingItem(m))
	if err != nil {
		return entities.Meeting{}, err
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
		return entities.Meeting{}, err
	}
	return m, nil
}

func (r *MeetingDynamoRepository) Update(ctx context.Context, m entities.Meeting) (entities.Meeting, error) {
	av, err := attributevalue.MarshalMap(toMeetingItem(m))
	if err != nil {
		return entities.Meeting{}, err
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
			return entities.Meeting{}, nil
		}
		return entities.Meeting{}, err
	}
	return m, nil
}

func (r *MeetingDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toMeetingItem(m entities.Meeting) meetingItem {
	return meetingItem{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Date:         m.Date,
		Time:         m.Time,
		Duration:     m.Duration,
		Participants: m.Participants,
		Location:     m.Location,
		Status:       string(m.Status),
		Notes:        m.Notes,
		CreatedAt:    timeToString(m.CreatedAt),
	}
}

func fromMeetingItem(it meetingItem) entities.Meeting {
	return entities.Meeting{
		ID:           it.ID,
		Title:        it.Title,
		Description:  it.Description,
		Date:         it.Date,
		Time:         it.Time,
		Duration:     it.Duration,
		Participants: it.Participants,
		Location:     it.Location,
		Status:       entities.MeetingStatus(it.Status),
		Notes:        it.Notes,
		CreatedAt:    timeFromString(it.CreatedAt),
	}
}
