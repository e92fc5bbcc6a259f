package database

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// tableSpec describes one table: env var override, default name, and the
// string attributes that each get a "<attr>-index" GSI.
type tableSpec struct {
	env     string
	def     string
	indexes []string
}

var tableSpecs = []tableSpec{
	{env: "CUSTOMERS_TABLE", def: "customers", indexes: []string{"email"}},
	{env: "PRODUCTS_TABLE", def: "products", indexes: []string{"name"}},
	{env: "ORDERS_TABLE", def: "orders", indexes: []string{"customer_id"}},
	{env: "ORDER_ITEMS_TABLE", def: "order_items", indexes: []string{"order_id", "product_id"}},
}

// EnsureTables creates every table the panel needs, with its GSIs, when it
// does not exist yet. Safe to run on every boot; existing tables are left
// untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, spec := range tableSpecs {
		if err := ensureTable(ctx, ddb, spec, log); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, spec tableSpec, log *zap.Logger) error {
	name := getenvDefault(spec.env, spec.def)

	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for _, key := range spec.indexes {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(key),
			AttributeType: types.ScalarAttributeTypeS,
		})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(key + "-index"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: attrs,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
	if len(gsis) > 0 {
		in.GlobalSecondaryIndexes = gsis
	}

	_, err := ddb.CreateTable(ctx, in)
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			log.Debug("table already exists", zap.String("table", name))
			return nil
		}
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute); err != nil {
		return err
	}
	log.Info("table created", zap.String("table", name))
	return nil
}
