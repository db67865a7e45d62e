package repository

import (
	"context"

	"motorcar_consultancy/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DynamoHealthChecker treats the store as up when the orders table can be
// described.
type DynamoHealthChecker struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStorageHealthChecker = (*DynamoHealthChecker)(nil)

func NewDynamoHealthChecker(ddb DynamoAPI, tableName string) *DynamoHealthChecker {
	return &DynamoHealthChecker{ddb: ddb, tableName: tableName}
}

func (h *DynamoHealthChecker) Ping(ctx context.Context) error {
	_, err := h.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(h.tableName)})
	return err
}

func (h *DynamoHealthChecker) Driver() string { return "dynamodb" }

type MongoHealthChecker struct {
	client *mongo.Client
}

var _ interfaces.IStorageHealthChecker = (*MongoHealthChecker)(nil)

func NewMongoHealthChecker(client *mongo.Client) *MongoHealthChecker {
	return &MongoHealthChecker{client: client}
}

func (h *MongoHealthChecker) Ping(ctx context.Context) error {
	return h.client.Ping(ctx, readpref.Primary())
}

func (h *MongoHealthChecker) Driver() string { return "mongodb" }
