package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func samplePolicy() entities.Policy {
	ts := time.Date(2026, 3, 2, 10, 0, 5, 0, time.UTC)
	return entities.Policy{
		ID:           "pol-1",
		OwnerUID:     "uid-1",
		SimulationID: "sim-1",
		Type:         entities.SimulationTypeAuto,
		PolicyFields: entities.PolicyFields{
			HolderName:       "Ana Silva",
			NIF:              "123456789",
			PaymentFrequency: entities.PaymentFrequencyAnual,
			PaymentMethod:    entities.PaymentMethodDebitoDireto,
			NIB:              "PT50000201231234567890154",
		},
		Status:    entities.PolicyStatusEmCriacao,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func TestPolicyItemConversion(t *testing.T) {
	p := samplePolicy()
	p.GreenCardPDFURL = "s3://g"
	back := fromPolicyItem(toPolicyItem(p))
	if back.ID != p.ID || back.NIB != p.NIB || back.PaymentMethod != p.PaymentMethod || back.GreenCardPDFURL != "s3://g" {
		t.Fatalf("unexpected policy %+v", back)
	}
	if !back.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("unexpected created_at %s", back.CreatedAt)
	}
}

func TestPolicyDynamoRepository_Create(t *testing.T) {
	t.Run("conditional put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewPolicyDynamoRepository(ddb, "")
		if _, err := repo.Create(context.Background(), samplePolicy()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *ddb.putIn[0].ConditionExpression != "attribute_not_exists(#id)" {
			t.Fatalf("expected conditional create")
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
		repo := NewPolicyDynamoRepository(ddb, "")
		_, err := repo.Create(context.Background(), samplePolicy())
		if !errors.Is(err, interfaces.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func TestPolicyDynamoRepository_UpdateFields(t *testing.T) {
	p := samplePolicy()
	ddb := &fakeDynamo{updateOut: mustMarshal(t, toPolicyItem(p))}
	repo := NewPolicyDynamoRepository(ddb, "")

	status := entities.PolicyStatusEmValidacao
	if _, err := repo.UpdateFields(context.Background(), "pol-1", p.PolicyFields, &status); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := ddb.updateIn[0]
	expr := *in.UpdateExpression
	for _, name := range []string{"owner_uid", "simulation_id", "type"} {
		for _, v := range in.ExpressionAttributeNames {
			if v == name {
				t.Fatalf("%s must never be updated: %s", name, expr)
			}
		}
	}
	if !strings.Contains(expr, "#status = :status") || !strings.Contains(expr, "#nib = :nib") {
		t.Fatalf("unexpected expression %s", expr)
	}
	if *in.ConditionExpression != "attribute_exists(#id)" {
		t.Fatalf("expected update of an existing record")
	}

	mb := p.PolicyFields
	mb.PaymentMethod = entities.PaymentMethodMultibanco
	mb = mb.Normalized()
	if _, err := repo.UpdateFields(context.Background(), "pol-1", mb, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expr = *ddb.updateIn[1].UpdateExpression
	if !strings.HasSuffix(expr, "REMOVE #nib") || strings.Contains(expr, "#status") {
		t.Fatalf("unexpected multibanco expression %s", expr)
	}
}

func TestPolicyDynamoRepository_Documents(t *testing.T) {
	ddb := &fakeDynamo{updateOut: mustMarshal(t, toPolicyItem(samplePolicy()))}
	repo := NewPolicyDynamoRepository(ddb, "")

	vigor := entities.PolicyStatusEmVigor
	if _, err := repo.SetDocument(context.Background(), "pol-1", entities.SlotPolicy, "s3://p", &vigor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := ddb.updateIn[0]
	if set.ExpressionAttributeNames["#doc"] != "policy_pdf_url" || !strings.Contains(*set.UpdateExpression, "#status = :status") {
		t.Fatalf("unexpected set document input %s %v", *set.UpdateExpression, set.ExpressionAttributeNames)
	}

	if _, err := repo.ClearDocument(context.Background(), "pol-1", entities.SlotGreenCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clear := ddb.updateIn[1]
	if clear.ExpressionAttributeNames["#doc"] != "green_card_pdf_url" || strings.Contains(*clear.UpdateExpression, "status") {
		t.Fatalf("clear must not touch status: %s", *clear.UpdateExpression)
	}

	if _, err := repo.SetDocument(context.Background(), "pol-1", entities.SlotQuote, "s3://x", nil); err == nil {
		t.Fatalf("expected error for a simulation slot")
	}
}

func TestPolicyDynamoRepository_GetBySimulationID(t *testing.T) {
	ddb := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{mustMarshal(t, toPolicyItem(samplePolicy()))}},
	}}
	repo := NewPolicyDynamoRepository(ddb, "")

	p, err := repo.GetBySimulationID(context.Background(), "sim-1")
	if err != nil || p.ID != "pol-1" {
		t.Fatalf("unexpected policy %+v err=%v", p, err)
	}
	in := ddb.queryIn[0]
	if *in.IndexName != policiesSimulationIndex || in.ExpressionAttributeNames["#k"] != "simulation_id" {
		t.Fatalf("unexpected query %+v", in)
	}

	none, err := repo.GetBySimulationID(context.Background(), "sim-9")
	if err != nil || none.ID != "" {
		t.Fatalf("expected zero policy, got %+v", none)
	}
}

func TestPolicyDynamoRepository_ListAll(t *testing.T) {
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{Items: []map[string]types.AttributeValue{mustMarshal(t, toPolicyItem(samplePolicy()))}, LastEvaluatedKey: idKey("pol-1")},
		{},
	}}
	repo := NewPolicyDynamoRepository(ddb, "apolices")
	items, err := repo.ListAll(context.Background())
	if err != nil || len(items) != 1 || len(ddb.scanIn) != 2 {
		t.Fatalf("unexpected scan result %d items, %d calls, err=%v", len(items), len(ddb.scanIn), err)
	}
	if *ddb.scanIn[0].TableName != "apolices" {
		t.Fatalf("expected configured table")
	}
}
