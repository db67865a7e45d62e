package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"motorcar_consultancy/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo keeps items in insertion order and pages scans two at a time.
type fakeDynamo struct {
	ids     []string
	items   map[string]map[string]types.AttributeValue
	scans   int
	failErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func itemID(av map[string]types.AttributeValue) string {
	if s, ok := av["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	id := itemID(in.Item)
	if _, ok := f.items[id]; ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.ids = append(f.ids, id)
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[itemID(in.Key)]}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.scans++
	start := 0
	if in.ExclusiveStartKey != nil {
		last := itemID(in.ExclusiveStartKey)
		for i, id := range f.ids {
			if id == last {
				start = i + 1
			}
		}
	}
	end := start + 2
	if end > len(f.ids) {
		end = len(f.ids)
	}
	out := &dynamodb.ScanOutput{}
	for _, id := range f.ids[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(f.ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: f.ids[end-1]}}
	}
	return out, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName}}, nil
}

func strPtr(s string) *string { return &s }

func TestOrderDynamoRepository_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderDynamoRepository(newFakeDynamo(), "consultation_requests")
	now := time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC)

	created, err := repo.Create(ctx, entities.Order{
		CustomerInfo:   entities.CustomerInfo{FullName: "A", Email: "a@x.io", Whatsapp: "999"},
		ServiceDetails: entities.ServiceDetails{Service: "auto-expert", TotalAmount: decimal.RequireFromString("3695.50")},
		CarDetails:     &entities.CarDetails{Budget: "10-15L"},
		AdditionalInfo: strPtr("call after 6"),
		Status:         entities.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id to be assigned")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ServiceDetails.TotalAmount.Equal(decimal.RequireFromString("3695.5")) {
		t.Fatalf("amount lost precision: %s", got.ServiceDetails.TotalAmount)
	}
	if got.CustomerInfo.Pincode != nil {
		t.Fatalf("expected nil pincode, got %q", *got.CustomerInfo.Pincode)
	}
	if got.CarDetails == nil || got.CarDetails.Budget != "10-15L" || got.CarDetails.CarType != "" {
		t.Fatalf("unexpected car details: %+v", got.CarDetails)
	}
	if got.AdditionalInfo == nil || *got.AdditionalInfo != "call after 6" {
		t.Fatalf("unexpected additional info: %v", got.AdditionalInfo)
	}
	if !got.CreatedAt.Equal(now) || got.Status != entities.OrderStatusPending {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestOrderDynamoRepository_GetByIDMissing(t *testing.T) {
	repo := NewOrderDynamoRepository(newFakeDynamo(), "consultation_requests")
	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero order, got %+v", got)
	}
}

func TestServiceSelectionDynamoRepository_ListReadsEveryPage(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewServiceSelectionDynamoRepository(ddb, "service_selections")
	for _, svc := range []string{"whatsapp", "express", "senior", "2-calls", "4-calls"} {
		if _, err := repo.Create(ctx, entities.ServiceSelection{Service: svc, SelectedAt: time.Now(), CreatedAt: time.Now()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 selections, got %d", len(list))
	}
	if ddb.scans != 3 {
		t.Fatalf("expected 3 scan pages, got %d", ddb.scans)
	}
}

func TestContactMessageDynamoRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewContactMessageDynamoRepository(newFakeDynamo(), "contact_submissions")
	created, err := repo.Create(ctx, entities.ContactMessage{
		Name: "B", Email: "b@x.io", Phone: strPtr("123"), Subject: entities.DefaultContactSubject,
		Message: "hi", Status: entities.ContactStatusNew, CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subject != entities.DefaultContactSubject || got.Phone == nil || *got.Phone != "123" || got.Status != entities.ContactStatusNew {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestDynamoRepositories_PropagateErrors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.failErr = errors.New("throttled")
	repo := NewContactMessageDynamoRepository(ddb, "contact_submissions")

	if _, err := repo.Create(context.Background(), entities.ContactMessage{}); err == nil {
		t.Fatalf("expected create error")
	}
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected list error")
	}
	if err := NewDynamoHealthChecker(ddb, "consultation_requests").Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
}

func TestDynamoHealthChecker(t *testing.T) {
	h := NewDynamoHealthChecker(newFakeDynamo(), "consultation_requests")
	if err := h.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Driver() != "dynamodb" {
		t.Fatalf("unexpected driver %s", h.Driver())
	}
}
