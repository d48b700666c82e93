package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func sampleSimulation() entities.Simulation {
	ts := time.Date(2026, 3, 2, 10, 0, 5, 0, time.UTC)
	return entities.Simulation{
		ID:         "sim-1",
		Type:       entities.SimulationTypeAuto,
		OwnerID:    "uid-1",
		OwnerEmail: "ana@example.pt",
		Status:     entities.SimulationStatusSubmitted,
		Title:      "Seguro Automóvel - AA-00-BB",
		Payload:    map[string]any{"plate": "AA-00-BB", "name": "Ana Silva"},
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

func TestSimulationItemConversion(t *testing.T) {
	s := sampleSimulation()
	s.PDFURL = "s3://docs/simulations/uid-1/sim-1/quote.pdf"

	back := fromSimulationItem(toSimulationItem(s))
	if back.ID != s.ID || back.Type != s.Type || back.Status != s.Status || back.PDFURL != s.PDFURL {
		t.Fatalf("unexpected simulation %+v", back)
	}
	if !back.CreatedAt.Equal(s.CreatedAt) || back.Payload["plate"] != "AA-00-BB" {
		t.Fatalf("unexpected timestamps or payload %+v", back)
	}
}

func TestSimulationDynamoRepository_Upsert(t *testing.T) {
	s := sampleSimulation()
	ddb := &fakeDynamo{updateOut: mustMarshal(t, toSimulationItem(s))}
	repo := NewSimulationDynamoRepository(ddb, "")

	got, err := repo.Upsert(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "sim-1" || got.OwnerID != "uid-1" {
		t.Fatalf("unexpected simulation %+v", got)
	}

	in := ddb.updateIn[0]
	if *in.TableName != "simulations" {
		t.Fatalf("expected default table, got %s", *in.TableName)
	}
	expr := *in.UpdateExpression
	for _, want := range []string{
		"if_not_exists(#created_at, :created_at)",
		"if_not_exists(#status, :status)",
		"if_not_exists(#owner_id, :owner_id)",
		"if_not_exists(#owner_email, :owner_email)",
		"#payload = :payload",
	} {
		if !strings.Contains(expr, want) {
			t.Fatalf("expected %q in %s", want, expr)
		}
	}
	if strings.Contains(expr, "pdf_url") {
		t.Fatalf("upsert must not touch the quote locator: %s", expr)
	}
	if in.ConditionExpression == nil || *in.ConditionExpression != "attribute_not_exists(#id) OR #owner_id = :owner_id" {
		t.Fatalf("upsert must be guarded by the owner, got %v", in.ConditionExpression)
	}
}

func TestSimulationDynamoRepository_Upsert_OtherOwner(t *testing.T) {
	ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	repo := NewSimulationDynamoRepository(ddb, "sims")

	s := sampleSimulation()
	s.OwnerID = "anon"
	_, err := repo.Upsert(context.Background(), s)
	if !errors.Is(err, interfaces.ErrOwnerMismatch) {
		t.Fatalf("expected ErrOwnerMismatch, got %v", err)
	}
}

func TestSimulationDynamoRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSimulationDynamoRepository(&fakeDynamo{}, "sims")
	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero simulation, got %+v err=%v", got, err)
	}
}

func TestSimulationDynamoRepository_ListByOwner_Paginates(t *testing.T) {
	a := sampleSimulation()
	b := sampleSimulation()
	b.ID = "sim-2"
	ddb := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{mustMarshal(t, toSimulationItem(a))},
			LastEvaluatedKey: idKey("sim-1"),
		},
		{
			Items: []map[string]types.AttributeValue{mustMarshal(t, toSimulationItem(b))},
		},
	}}
	repo := NewSimulationDynamoRepository(ddb, "")

	items, err := repo.ListByOwner(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || len(ddb.queryIn) != 2 {
		t.Fatalf("expected two pages, got %d items over %d calls", len(items), len(ddb.queryIn))
	}
	if *ddb.queryIn[0].IndexName != simulationsOwnerIndex {
		t.Fatalf("expected owner index")
	}
}

func TestSimulationDynamoRepository_QuoteDocument(t *testing.T) {
	s := sampleSimulation()
	ddb := &fakeDynamo{updateOut: mustMarshal(t, toSimulationItem(s))}
	repo := NewSimulationDynamoRepository(ddb, "")

	if _, err := repo.SetQuoteDocument(context.Background(), "sim-1", "s3://q", entities.SimulationStatusQuoted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := ddb.updateIn[0]
	if set.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value != "quoted" {
		t.Fatalf("expected quoted status")
	}

	if _, err := repo.ClearQuoteDocument(context.Background(), "sim-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clear := *ddb.updateIn[1].UpdateExpression
	if !strings.Contains(clear, "REMOVE #pdf_url") || strings.Contains(clear, "#status") {
		t.Fatalf("clear must only remove the locator: %s", clear)
	}
}

func TestSimulationDynamoRepository_UpdateMissing(t *testing.T) {
	ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	repo := NewSimulationDynamoRepository(ddb, "")
	got, err := repo.SetQuoteDocument(context.Background(), "nope", "s3://q", entities.SimulationStatusQuoted)
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero simulation, got %+v err=%v", got, err)
	}
}
