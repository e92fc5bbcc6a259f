package repository

import (
	"context"
	"sort"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customersEmailIndex       = "email-index"
)

type customerRecord struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	LastName    string `dynamodbav:"last_name"`
	Email       string `dynamodbav:"email"`
	CompanyName string `dynamodbav:"company_name"`
	Industry    string `dynamodbav:"industry"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Listing scans the whole table and filters in memory; the customer base of an
// internal sales panel stays small enough that a query planner buys nothing.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerRecord(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var rec customerRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(rec), nil
}

func (r *CustomerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var rec customerRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(rec), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context, f interfaces.CustomerListFilter) ([]entities.Customer, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if f.Search != "" &&
			!containsFold(c.Name, f.Search) &&
			!containsFold(c.LastName, f.Search) &&
			!containsFold(c.CompanyName, f.Search) &&
			!containsFold(c.Email, f.Search) {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		return filtered[i].ID < filtered[j].ID
	})
	return paginate(filtered, f.Skip, f.Limit), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerRecord(c))
	if err != nil {
		return entities.Customer{}, err
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
		if conditionFailed(err) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CustomerDynamoRepository) scanAll(ctx context.Context) ([]entities.Customer, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var customers []entities.Customer
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var rec customerRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			customers = append(customers, fromCustomerRecord(rec))
		}
	}
	return customers, nil
}

func toCustomerRecord(c entities.Customer) customerRecord {
	return customerRecord{
		ID:          c.ID,
		Name:        c.Name,
		LastName:    c.LastName,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		Industry:    c.Industry,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerRecord(rec customerRecord) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Customer{
		ID:          rec.ID,
		Name:        rec.Name,
		LastName:    rec.LastName,
		Email:       rec.Email,
		CompanyName: rec.CompanyName,
		Industry:    rec.Industry,
		CreatedAt:   createdAt,
	}
}
