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
	defaultOrdersTableName     = "orders"
	defaultOrderItemsTableName = "order_items"
	ordersCustomerIDIndex      = "customer_id-index"
	orderItemsOrderIDIndex     = "order_id-index"
	orderItemsProductIDIndex   = "product_id-index"
)

type orderRecord struct {
	ID          string  `dynamodbav:"id"`
	CustomerID  string  `dynamodbav:"customer_id"`
	Status      string  `dynamodbav:"status"`
	TotalAmount float64 `dynamodbav:"total_amount"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

type orderItemRecord struct {
	ID        string  `dynamodbav:"id"`
	OrderID   string  `dynamodbav:"order_id"`
	ProductID string  `dynamodbav:"product_id"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order and OrderItem entities in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string); GSI customer_id-index (PK: customer_id)
//   - order_items: PK id (string); GSI order_id-index (PK: order_id) and
//     GSI product_id-index (PK: product_id)
//
// Every write that touches both tables goes through TransactWriteItems, so
// total_amount and the item rows never observe partial state. Status changes
// are compare-and-swap updates conditioned on the expected current status.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	ordersTbl string
	itemsTbl  string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		ordersTbl: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		itemsTbl:  getenvDefault("ORDER_ITEMS_TABLE", defaultOrderItemsTableName),
	}
}

func (r *OrderDynamoRepository) CreateWithItems(ctx context.Context, o entities.Order, items []entities.OrderItem) (entities.Order, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	actions := make([]types.TransactWriteItem, 0, len(items)+1)
	actions = append(actions, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.ordersTbl),
			Item:                orderAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toOrderItemRecord(it))
		if err != nil {
			return entities.Order{}, err
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTbl),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: actions,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTbl),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, f interfaces.OrderListFilter) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.ordersTbl),
	})

	var orders []entities.Order
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var rec orderRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderRecord(rec))
		}
	}

	filtered := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		filtered = append(filtered, o)
	}

	sortOrders(filtered)
	return paginate(filtered, f.Skip, f.Limit), nil
}

func (r *OrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.ordersTbl),
		IndexName:              aws.String(ordersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderRecord(rec))
	}
	sortOrders(orders)
	return orders, nil
}

func (r *OrderDynamoRepository) ListItemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	return r.queryItems(ctx, orderItemsOrderIDIndex, "order_id = :v", orderID)
}

func (r *OrderDynamoRepository) ListItemsByProductID(ctx context.Context, productID string) ([]entities.OrderItem, error) {
	return r.queryItems(ctx, orderItemsProductIDIndex, "product_id = :v", productID)
}

func (r *OrderDynamoRepository) ListAllItems(ctx context.Context) ([]entities.OrderItem, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.itemsTbl),
	})

	var items []entities.OrderItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var rec orderItemRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			items = append(items, fromOrderItemRecord(rec))
		}
	}
	sortOrderItems(items)
	return items, nil
}

func (r *OrderDynamoRepository) ReplaceItems(ctx context.Context, orderID string, items []entities.OrderItem, totalAmount float64) (entities.Order, error) {
	existing, err := r.ListItemsByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	actions := make([]types.TransactWriteItem, 0, len(existing)+len(items)+1)
	actions = append(actions, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.ordersTbl),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: orderID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #total_amount = :total"),
			ExpressionAttributeNames: map[string]string{
				"#id":           "id",
				"#total_amount": "total_amount",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":total": &types.AttributeValueMemberN{Value: floatToString(totalAmount)},
			},
		},
	})
	for _, old := range existing {
		actions = append(actions, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTbl),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: old.ID},
				},
			},
		})
	}
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toOrderItemRecord(it))
		if err != nil {
			return entities.Order{}, err
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTbl),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: actions,
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return r.GetByID(ctx, orderID)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.ordersTbl),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) DeleteWithItems(ctx context.Context, orderID string) error {
	items, err := r.ListItemsByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	actions := make([]types.TransactWriteItem, 0, len(items)+1)
	actions = append(actions, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.ordersTbl),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: orderID},
			},
		},
	})
	for _, it := range items {
		actions = append(actions, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTbl),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: it.ID},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: actions,
	})
	return err
}

func (r *OrderDynamoRepository) queryItems(ctx context.Context, index, keyCond, value string) ([]entities.OrderItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTbl),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItemRecord(rec))
	}
	sortOrderItems(items)
	return items, nil
}

func sortOrders(list []entities.Order) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
}

func sortOrderItems(list []entities.OrderItem) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
}

func toOrderRecord(o entities.Order) orderRecord {
	return orderRecord{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Order{
		ID:          rec.ID,
		CustomerID:  rec.CustomerID,
		Status:      entities.OrderStatus(rec.Status),
		TotalAmount: rec.TotalAmount,
		CreatedAt:   createdAt,
	}
}

func toOrderItemRecord(it entities.OrderItem) orderItemRecord {
	return orderItemRecord{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		UnitPrice: it.UnitPrice,
		CreatedAt: it.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItemRecord(rec orderItemRecord) entities.OrderItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.OrderItem{
		ID:        rec.ID,
		OrderID:   rec.OrderID,
		ProductID: rec.ProductID,
		UnitPrice: rec.UnitPrice,
		CreatedAt: createdAt,
	}
}
