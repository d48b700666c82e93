package repository

import (
	"context"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSimulationsTableName = "simulations"
	simulationsOwnerIndex       = "owner_id-index"
)

type simulationItem struct {
	ID         string                 `dynamodbav:"id"`
	Type       string                 `dynamodbav:"type"`
	OwnerID    string                 `dynamodbav:"owner_id"`
	OwnerEmail string                 `dynamodbav:"owner_email,omitempty"`
	Status     string                 `dynamodbav:"status"`
	Title      string                 `dynamodbav:"title"`
	Summary    string                 `dynamodbav:"summary,omitempty"`
	Payload    map[string]interface{} `dynamodbav:"payload,omitempty"`
	PDFURL     string                 `dynamodbav:"pdf_url,omitempty"`
	CreatedAt  string                 `dynamodbav:"created_at"`
	UpdatedAt  string                 `dynamodbav:"updated_at"`
}

// SimulationDynamoRepository persists Simulation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// The per-owner layout of the portal (users/{uid}/simulations) maps onto the
// owner_id GSI; administrator views across owners use Scan.
type SimulationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISimulationRepository = (*SimulationDynamoRepository)(nil)

func NewSimulationDynamoRepository(ddb DynamoAPI, tableName string) *SimulationDynamoRepository {
	if tableName == "" {
		tableName = defaultSimulationsTableName
	}
	return &SimulationDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Upsert writes the submission fields of s. created_at, status and the owner
// are only set when absent, and pdf_url is never touched, so a resubmission
// of a quoted simulation keeps its quote. A record owned by someone else is
// left alone and interfaces.ErrOwnerMismatch is returned.
func (r *SimulationDynamoRepository) Upsert(ctx context.Context, s entities.Simulation) (entities.Simulation, error) {
	payload, err := attributevalue.Marshal(s.Payload)
	if err != nil {
		return entities.Simulation{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(s.ID),
		UpdateExpression: aws.String("SET #type = :type, #owner_id = if_not_exists(#owner_id, :owner_id), " +
			"#owner_email = if_not_exists(#owner_email, :owner_email), " +
			"#title = :title, #summary = :summary, #payload = :payload, #updated_at = :updated_at, " +
			"#created_at = if_not_exists(#created_at, :created_at), #status = if_not_exists(#status, :status)"),
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#type":        "type",
			"#owner_id":    "owner_id",
			"#owner_email": "owner_email",
			"#title":       "title",
			"#summary":     "summary",
			"#payload":     "payload",
			"#updated_at":  "updated_at",
			"#created_at":  "created_at",
			"#status":      "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type":        str(string(s.Type)),
			":owner_id":    str(s.OwnerID),
			":owner_email": str(s.OwnerEmail),
			":title":       str(s.Title),
			":summary":     str(s.Summary),
			":payload":     payload,
			":updated_at":  str(formatTime(s.UpdatedAt)),
			":created_at":  str(formatTime(s.CreatedAt)),
			":status":      str(string(s.Status)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.Simulation{}, interfaces.ErrOwnerMismatch
	}
	if err != nil {
		return entities.Simulation{}, err
	}
	return decodeSimulation(out.Attributes)
}

func (r *SimulationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Simulation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Simulation{}, err
	}
	return decodeSimulation(out.Item)
}

func (r *SimulationDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Simulation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(simulationsOwnerIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": str(ownerID),
		},
	})

	var items []entities.Simulation
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeSimulations(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func (r *SimulationDynamoRepository) ListAll(ctx context.Context) ([]entities.Simulation, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var items []entities.Simulation
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeSimulations(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func (r *SimulationDynamoRepository) SetQuoteDocument(ctx context.Context, id, locator string, status entities.SimulationStatus) (entities.Simulation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pdf_url = :pdf_url, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pdf_url":    str(locator),
			":status":     str(string(status)),
			":updated_at": str(now),
		}
		names := map[string]string{
			"#pdf_url":    "pdf_url",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// ClearQuoteDocument removes the locator and leaves the status as it is.
func (r *SimulationDynamoRepository) ClearQuoteDocument(ctx context.Context, id string) (entities.Simulation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at REMOVE #pdf_url"
		vals := map[string]types.AttributeValue{
			":updated_at": str(now),
		}
		names := map[string]string{
			"#pdf_url":    "pdf_url",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *SimulationDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.Simulation, error) {
	updateExpr, values, names := build(formatTime(r.now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Simulation{}, nil
		}
		return entities.Simulation{}, err
	}
	return decodeSimulation(out.Attributes)
}

func decodeSimulation(raw map[string]types.AttributeValue) (entities.Simulation, error) {
	if len(raw) == 0 {
		return entities.Simulation{}, nil
	}
	var it simulationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Simulation{}, err
	}
	return fromSimulationItem(it), nil
}

func decodeSimulations(raw []map[string]types.AttributeValue) ([]entities.Simulation, error) {
	items := make([]entities.Simulation, 0, len(raw))
	for _, r := range raw {
		s, err := decodeSimulation(r)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

func toSimulationItem(s entities.Simulation) simulationItem {
	return simulationItem{
		ID:         s.ID,
		Type:       string(s.Type),
		OwnerID:    s.OwnerID,
		OwnerEmail: s.OwnerEmail,
		Status:     string(s.Status),
		Title:      s.Title,
		Summary:    s.Summary,
		Payload:    s.Payload,
		PDFURL:     s.PDFURL,
		CreatedAt:  formatTime(s.CreatedAt),
		UpdatedAt:  formatTime(s.UpdatedAt),
	}
}

func fromSimulationItem(it simulationItem) entities.Simulation {
	return entities.Simulation{
		ID:         it.ID,
		Type:       entities.SimulationType(it.Type),
		OwnerID:    it.OwnerID,
		OwnerEmail: it.OwnerEmail,
		Status:     entities.SimulationStatus(it.Status),
		Title:      it.Title,
		Summary:    it.Summary,
		Payload:    it.Payload,
		PDFURL:     it.PDFURL,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
