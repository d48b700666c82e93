package repository

import (
	"context"
	"fmt"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoliciesTableName = "policies"
	policiesOwnerIndex       = "owner_uid-index"
	policiesSimulationIndex  = "simulation_id-index"
)

type policyItem struct {
	ID                string `dynamodbav:"id"`
	OwnerUID          string `dynamodbav:"owner_uid"`
	SimulationID      string `dynamodbav:"simulation_id"`
	Type              string `dynamodbav:"type"`
	HolderName        string `dynamodbav:"holder_name"`
	NIF               string `dynamodbav:"nif"`
	CitizenCardNumber string `dynamodbav:"citizen_card_number"`
	AddressStreet     string `dynamodbav:"address_street"`
	AddressPostalCode string `dynamodbav:"address_postal_code"`
	AddressLocality   string `dynamodbav:"address_locality"`
	Phone             string `dynamodbav:"phone"`
	Email             string `dynamodbav:"email"`
	PaymentFrequency  string `dynamodbav:"payment_frequency"`
	PaymentMethod     string `dynamodbav:"payment_method"`
	NIB               string `dynamodbav:"nib,omitempty"`
	Status            string `dynamodbav:"status"`
	PolicyPDFURL      string `dynamodbav:"policy_pdf_url,omitempty"`
	ReceiptPDFURL     string `dynamodbav:"receipt_pdf_url,omitempty"`
	ConditionsPDFURL  string `dynamodbav:"conditions_pdf_url,omitempty"`
	GreenCardPDFURL   string `dynamodbav:"green_card_pdf_url,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// policyFieldAttributes lists the editable attributes written by
// UpdateFields. owner_uid, simulation_id and type are written once by Create.
var policyFieldAttributes = []string{
	"holder_name",
	"nif",
	"citizen_card_number",
	"address_street",
	"address_postal_code",
	"address_locality",
	"phone",
	"email",
	"payment_frequency",
	"payment_method",
}

var policySlotAttributes = map[entities.DocumentSlot]string{
	entities.SlotPolicy:     "policy_pdf_url",
	entities.SlotReceipt:    "receipt_pdf_url",
	entities.SlotConditions: "conditions_pdf_url",
	entities.SlotGreenCard:  "green_card_pdf_url",
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_uid-index (PK: owner_uid)
//   - GSI: simulation_id-index (PK: simulation_id)
type PolicyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb DynamoAPI, tableName string) *PolicyDynamoRepository {
	if tableName == "" {
		tableName = defaultPoliciesTableName
	}
	return &PolicyDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, err
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
		if isConditionFailed(err) {
			return entities.Policy{}, interfaces.ErrAlreadyExists
		}
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	return decodePolicy(out.Item)
}

func (r *PolicyDynamoRepository) GetBySimulationID(ctx context.Context, simulationID string) (entities.Policy, error) {
	items, err := r.query(ctx, policiesSimulationIndex, "simulation_id", simulationID)
	if err != nil {
		return entities.Policy{}, err
	}
	if len(items) == 0 {
		return entities.Policy{}, nil
	}
	return items[0], nil
}

func (r *PolicyDynamoRepository) ListByOwner(ctx context.Context, ownerUID string) ([]entities.Policy, error) {
	return r.query(ctx, policiesOwnerIndex, "owner_uid", ownerUID)
}

func (r *PolicyDynamoRepository) ListAll(ctx context.Context) ([]entities.Policy, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var items []entities.Policy
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodePolicies(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func (r *PolicyDynamoRepository) query(ctx context.Context, index, attr, value string) ([]entities.Policy, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": str(value),
		},
	})

	var items []entities.Policy
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodePolicies(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

// UpdateFields merges f into the record. The nib attribute is removed when
// f carries none (multibanco).
func (r *PolicyDynamoRepository) UpdateFields(ctx context.Context, id string, f entities.PolicyFields, status *entities.PolicyStatus) (entities.Policy, error) {
	it := toPolicyItem(entities.Policy{PolicyFields: f})
	fieldValues := map[string]string{
		"holder_name":         it.HolderName,
		"nif":                 it.NIF,
		"citizen_card_number": it.CitizenCardNumber,
		"address_street":      it.AddressStreet,
		"address_postal_code": it.AddressPostalCode,
		"address_locality":    it.AddressLocality,
		"phone":               it.Phone,
		"email":               it.Email,
		"payment_frequency":   it.PaymentFrequency,
		"payment_method":      it.PaymentMethod,
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{"#updated_at": "updated_at", "#nib": "nib"}
		vals := map[string]types.AttributeValue{":updated_at": str(now)}
		expr := "SET #updated_at = :updated_at"
		for _, attr := range policyFieldAttributes {
			names["#"+attr] = attr
			vals[":"+attr] = str(fieldValues[attr])
			expr += fmt.Sprintf(", #%s = :%s", attr, attr)
		}
		if status != nil {
			names["#status"] = "status"
			vals[":status"] = str(string(*status))
			expr += ", #status = :status"
		}
		if it.NIB != "" {
			vals[":nib"] = str(it.NIB)
			expr += ", #nib = :nib"
		} else {
			expr += " REMOVE #nib"
		}
		return expr, vals, names
	})
}

func (r *PolicyDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PolicyStatus) (entities.Policy, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     str(string(status)),
			":updated_at": str(now),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PolicyDynamoRepository) SetDocument(ctx context.Context, id string, slot entities.DocumentSlot, locator string, status *entities.PolicyStatus) (entities.Policy, error) {
	attr, ok := policySlotAttributes[slot]
	if !ok {
		return entities.Policy{}, fmt.Errorf("unknown policy slot %q", slot)
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #doc = :doc, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":doc":        str(locator),
			":updated_at": str(now),
		}
		names := map[string]string{
			"#doc":        attr,
			"#updated_at": "updated_at",
		}
		if status != nil {
			expr += ", #status = :status"
			vals[":status"] = str(string(*status))
			names["#status"] = "status"
		}
		return expr, vals, names
	})
}

// ClearDocument removes the slot locator and leaves the status as it is.
func (r *PolicyDynamoRepository) ClearDocument(ctx context.Context, id string, slot entities.DocumentSlot) (entities.Policy, error) {
	attr, ok := policySlotAttributes[slot]
	if !ok {
		return entities.Policy{}, fmt.Errorf("unknown policy slot %q", slot)
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at REMOVE #doc"
		vals := map[string]types.AttributeValue{
			":updated_at": str(now),
		}
		names := map[string]string{
			"#doc":        attr,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PolicyDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.Policy, error) {
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
			return entities.Policy{}, nil
		}
		return entities.Policy{}, err
	}
	return decodePolicy(out.Attributes)
}

func decodePolicy(raw map[string]types.AttributeValue) (entities.Policy, error) {
	if len(raw) == 0 {
		return entities.Policy{}, nil
	}
	var it policyItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func decodePolicies(raw []map[string]types.AttributeValue) ([]entities.Policy, error) {
	items := make([]entities.Policy, 0, len(raw))
	for _, r := range raw {
		p, err := decodePolicy(r)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		ID:                p.ID,
		OwnerUID:          p.OwnerUID,
		SimulationID:      p.SimulationID,
		Type:              string(p.Type),
		HolderName:        p.HolderName,
		NIF:               p.NIF,
		CitizenCardNumber: p.CitizenCardNumber,
		AddressStreet:     p.AddressStreet,
		AddressPostalCode: p.AddressPostalCode,
		AddressLocality:   p.AddressLocality,
		Phone:             p.Phone,
		Email:             p.Email,
		PaymentFrequency:  string(p.PaymentFrequency),
		PaymentMethod:     string(p.PaymentMethod),
		NIB:               p.NIB,
		Status:            string(p.Status),
		PolicyPDFURL:      p.PolicyPDFURL,
		ReceiptPDFURL:     p.ReceiptPDFURL,
		ConditionsPDFURL:  p.ConditionsPDFURL,
		GreenCardPDFURL:   p.GreenCardPDFURL,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	return entities.Policy{
		ID:           it.ID,
		OwnerUID:     it.OwnerUID,
		SimulationID: it.SimulationID,
		Type:         entities.SimulationType(it.Type),
		PolicyFields: entities.PolicyFields{
			HolderName:        it.HolderName,
			NIF:               it.NIF,
			CitizenCardNumber: it.CitizenCardNumber,
			AddressStreet:     it.AddressStreet,
			AddressPostalCode: it.AddressPostalCode,
			AddressLocality:   it.AddressLocality,
			Phone:             it.Phone,
			Email:             it.Email,
			PaymentFrequency:  entities.PaymentFrequency(it.PaymentFrequency),
			PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
			NIB:               it.NIB,
		},
		Status:           entities.PolicyStatus(it.Status),
		PolicyPDFURL:     it.PolicyPDFURL,
		ReceiptPDFURL:    it.ReceiptPDFURL,
		ConditionsPDFURL: it.ConditionsPDFURL,
		GreenCardPDFURL:  it.GreenCardPDFURL,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
