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
	defaultProductsTableName = "products"
	productsNameIndex        = "name-index"
)

type productRecord struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	ServiceLine string  `dynamodbav:"service_line"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	IsActive    bool    `dynamodbav:"is_active"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)
//
// The name index backs the unique-name guard; deactivated products stay in the
// table because sold engagements keep referencing them.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductRecord(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var rec productRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Product{}, err
	}
	return fromProductRecord(rec), nil
}

func (r *ProductDynamoRepository) GetByName(ctx context.Context, name string) (entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Items) == 0 {
		return entities.Product{}, nil
	}

	var rec productRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Product{}, err
	}
	return fromProductRecord(rec), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context, f interfaces.ProductListFilter) ([]entities.Product, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if f.Search != "" && !containsFold(p.Name, f.Search) {
			continue
		}
		if f.ServiceLine != "" && p.ServiceLine != f.ServiceLine {
			continue
		}
		if f.IsActive != nil && p.IsActive != *f.IsActive {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		return filtered[i].ID < filtered[j].ID
	})
	return paginate(filtered, f.Skip, f.Limit), nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductRecord(p))
	if err != nil {
		return entities.Product{}, err
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
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ProductDynamoRepository) scanAll(ctx context.Context) ([]entities.Product, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var products []entities.Product
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var rec productRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			products = append(products, fromProductRecord(rec))
		}
	}
	return products, nil
}

func toProductRecord(p entities.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		ServiceLine: p.ServiceLine,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductRecord(rec productRecord) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		ServiceLine: rec.ServiceLine,
		Description: rec.Description,
		Price:       rec.Price,
		IsActive:    rec.IsActive,
		CreatedAt:   createdAt,
	}
}
