// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/extractjob"
	"github.com/kyletan/ippt-tracker/gen/ent/predicate"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
	"github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob    = "ExtractJob"
	TypeScoresheet    = "Scoresheet"
	TypeSoldierResult = "SoldierResult"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	format               *string
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	ocr_provider         *string
	ocr_confidence       *float32
	addocr_confidence    *float32
	needs_review         *bool
	ocr_text             *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	model_name           *string
	clearedFields        map[string]struct{}
	scoresheet           *uuid.UUID
	clearedscoresheet    bool
	soldiers             map[uuid.UUID]struct{}
	removedsoldiers      map[uuid.UUID]struct{}
	clearedsoldiers      bool
	done                 bool
	oldValue             func(context.Context) (*ExtractJob, error)
	predicates           []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScoresheetID sets the "scoresheet_id" field.
func (m *ExtractJobMutation) SetScoresheetID(u uuid.UUID) {
	m.scoresheet = &u
}

// ScoresheetID returns the value of the "scoresheet_id" field in the mutation.
func (m *ExtractJobMutation) ScoresheetID() (r uuid.UUID, exists bool) {
	v := m.scoresheet
	if v == nil {
		return
	}
	return *v, true
}

// OldScoresheetID returns the old "scoresheet_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldScoresheetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoresheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoresheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoresheetID: %w", err)
	}
	return oldValue.ScoresheetID, nil
}

// ResetScoresheetID resets all changes to the "scoresheet_id" field.
func (m *ExtractJobMutation) ResetScoresheetID() {
	m.scoresheet = nil
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetOcrProvider sets the "ocr_provider" field.
func (m *ExtractJobMutation) SetOcrProvider(s string) {
	m.ocr_provider = &s
}

// OcrProvider returns the value of the "ocr_provider" field in the mutation.
func (m *ExtractJobMutation) OcrProvider() (r string, exists bool) {
	v := m.ocr_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrProvider returns the old "ocr_provider" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrProvider: %w", err)
	}
	return oldValue.OcrProvider, nil
}

// ClearOcrProvider clears the value of the "ocr_provider" field.
func (m *ExtractJobMutation) ClearOcrProvider() {
	m.ocr_provider = nil
	m.clearedFields[extractjob.FieldOcrProvider] = struct{}{}
}

// OcrProviderCleared returns if the "ocr_provider" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrProviderCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrProvider]
	return ok
}

// ResetOcrProvider resets all changes to the "ocr_provider" field.
func (m *ExtractJobMutation) ResetOcrProvider() {
	m.ocr_provider = nil
	delete(m.clearedFields, extractjob.FieldOcrProvider)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *ExtractJobMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *ExtractJobMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *ExtractJobMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *ExtractJobMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[extractjob.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *ExtractJobMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, extractjob.FieldOcrConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ExtractJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExtractJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExtractJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[extractjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExtractJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, extractjob.FieldOcrText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetModelName sets the "model_name" field.
func (m *ExtractJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractjob.FieldModelName)
}

// ClearScoresheet clears the "scoresheet" edge to the Scoresheet entity.
func (m *ExtractJobMutation) ClearScoresheet() {
	m.clearedscoresheet = true
	m.clearedFields[extractjob.FieldScoresheetID] = struct{}{}
}

// ScoresheetCleared reports if the "scoresheet" edge to the Scoresheet entity was cleared.
func (m *ExtractJobMutation) ScoresheetCleared() bool {
	return m.clearedscoresheet
}

// ScoresheetIDs returns the "scoresheet" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScoresheetID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) ScoresheetIDs() (ids []uuid.UUID) {
	if id := m.scoresheet; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScoresheet resets all changes to the "scoresheet" edge.
func (m *ExtractJobMutation) ResetScoresheet() {
	m.scoresheet = nil
	m.clearedscoresheet = false
}

// AddSoldierIDs adds the "soldiers" edge to the SoldierResult entity by ids.
func (m *ExtractJobMutation) AddSoldierIDs(ids ...uuid.UUID) {
	if m.soldiers == nil {
		m.soldiers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.soldiers[ids[i]] = struct{}{}
	}
}

// ClearSoldiers clears the "soldiers" edge to the SoldierResult entity.
func (m *ExtractJobMutation) ClearSoldiers() {
	m.clearedsoldiers = true
}

// SoldiersCleared reports if the "soldiers" edge to the SoldierResult entity was cleared.
func (m *ExtractJobMutation) SoldiersCleared() bool {
	return m.clearedsoldiers
}

// RemoveSoldierIDs removes the "soldiers" edge to the SoldierResult entity by IDs.
func (m *ExtractJobMutation) RemoveSoldierIDs(ids ...uuid.UUID) {
	if m.removedsoldiers == nil {
		m.removedsoldiers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.soldiers, ids[i])
		m.removedsoldiers[ids[i]] = struct{}{}
	}
}

// RemovedSoldiers returns the removed IDs of the "soldiers" edge to the SoldierResult entity.
func (m *ExtractJobMutation) RemovedSoldiersIDs() (ids []uuid.UUID) {
	for id := range m.removedsoldiers {
		ids = append(ids, id)
	}
	return
}

// SoldiersIDs returns the "soldiers" edge IDs in the mutation.
func (m *ExtractJobMutation) SoldiersIDs() (ids []uuid.UUID) {
	for id := range m.soldiers {
		ids = append(ids, id)
	}
	return
}

// ResetSoldiers resets all changes to the "soldiers" edge.
func (m *ExtractJobMutation) ResetSoldiers() {
	m.soldiers = nil
	m.clearedsoldiers = false
	m.removedsoldiers = nil
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.scoresheet != nil {
		fields = append(fields, extractjob.FieldScoresheetID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.ocr_provider != nil {
		fields = append(fields, extractjob.FieldOcrProvider)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, extractjob.FieldOcrConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.ocr_text != nil {
		fields = append(fields, extractjob.FieldOcrText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.model_name != nil {
		fields = append(fields, extractjob.FieldModelName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldScoresheetID:
		return m.ScoresheetID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldOcrProvider:
		return m.OcrProvider()
	case extractjob.FieldOcrConfidence:
		return m.OcrConfidence()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldOcrText:
		return m.OcrText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldModelName:
		return m.ModelName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldScoresheetID:
		return m.OldScoresheetID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldOcrProvider:
		return m.OldOcrProvider(ctx)
	case extractjob.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldModelName:
		return m.OldModelName(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldScoresheetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoresheetID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldOcrProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrProvider(v)
		return nil
	case extractjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addocr_confidence != nil {
		fields = append(fields, extractjob.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldOcrProvider) {
		fields = append(fields, extractjob.FieldOcrProvider)
	}
	if m.FieldCleared(extractjob.FieldOcrConfidence) {
		fields = append(fields, extractjob.FieldOcrConfidence)
	}
	if m.FieldCleared(extractjob.FieldOcrText) {
		fields = append(fields, extractjob.FieldOcrText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldModelName) {
		fields = append(fields, extractjob.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldOcrProvider:
		m.ClearOcrProvider()
		return nil
	case extractjob.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case extractjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldScoresheetID:
		m.ResetScoresheetID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldOcrProvider:
		m.ResetOcrProvider()
		return nil
	case extractjob.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldModelName:
		m.ResetModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.scoresheet != nil {
		edges = append(edges, extractjob.EdgeScoresheet)
	}
	if m.soldiers != nil {
		edges = append(edges, extractjob.EdgeSoldiers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeScoresheet:
		if id := m.scoresheet; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeSoldiers:
		ids := make([]ent.Value, 0, len(m.soldiers))
		for id := range m.soldiers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsoldiers != nil {
		edges = append(edges, extractjob.EdgeSoldiers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeSoldiers:
		ids := make([]ent.Value, 0, len(m.removedsoldiers))
		for id := range m.removedsoldiers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedscoresheet {
		edges = append(edges, extractjob.EdgeScoresheet)
	}
	if m.clearedsoldiers {
		edges = append(edges, extractjob.EdgeSoldiers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeScoresheet:
		return m.clearedscoresheet
	case extractjob.EdgeSoldiers:
		return m.clearedsoldiers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeScoresheet:
		m.ClearScoresheet()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeScoresheet:
		m.ResetScoresheet()
		return nil
	case extractjob.EdgeSoldiers:
		m.ResetSoldiers()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// ScoresheetMutation represents an operation that mutates the Scoresheet nodes in the graph.
type ScoresheetMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_path     *string
	content_hash    *[]byte
	filename        *string
	file_ext        *string
	file_size       *int
	addfile_size    *int
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	soldiers        map[uuid.UUID]struct{}
	removedsoldiers map[uuid.UUID]struct{}
	clearedsoldiers bool
	done            bool
	oldValue        func(context.Context) (*Scoresheet, error)
	predicates      []predicate.Scoresheet
}

var _ ent.Mutation = (*ScoresheetMutation)(nil)

// scoresheetOption allows management of the mutation configuration using functional options.
type scoresheetOption func(*ScoresheetMutation)

// newScoresheetMutation creates new mutation for the Scoresheet entity.
func newScoresheetMutation(c config, op Op, opts ...scoresheetOption) *ScoresheetMutation {
	m := &ScoresheetMutation{
		config:        c,
		op:            op,
		typ:           TypeScoresheet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoresheetID sets the ID field of the mutation.
func withScoresheetID(id uuid.UUID) scoresheetOption {
	return func(m *ScoresheetMutation) {
		var (
			err   error
			once  sync.Once
			value *Scoresheet
		)
		m.oldValue = func(ctx context.Context) (*Scoresheet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scoresheet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoresheet sets the old Scoresheet of the mutation.
func withScoresheet(node *Scoresheet) scoresheetOption {
	return func(m *ScoresheetMutation) {
		m.oldValue = func(context.Context) (*Scoresheet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoresheetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoresheetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scoresheet entities.
func (m *ScoresheetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoresheetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoresheetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scoresheet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *ScoresheetMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ScoresheetMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Scoresheet entity.
// If the Scoresheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoresheetMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ScoresheetMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ScoresheetMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ScoresheetMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Scoresheet entity.
// If the Scoresheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoresheetMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ScoresheetMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *ScoresheetMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ScoresheetMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Scoresheet entity.
// If the Scoresheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoresheetMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ScoresheetMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ScoresheetMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ScoresheetMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Scoresheet entity.
// If the Scoresheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoresheetMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ScoresheetMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *ScoresheetMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ScoresheetMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Scoresheet entity.
// If the Scoresheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoresheetMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ScoresheetMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ScoresheetMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ScoresheetMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ScoresheetMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ScoresheetMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Scoresheet entity.
// If the Scoresheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoresheetMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ScoresheetMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ScoresheetMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ScoresheetMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ScoresheetMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ScoresheetMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ScoresheetMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ScoresheetMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ScoresheetMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddSoldierIDs adds the "soldiers" edge to the SoldierResult entity by ids.
func (m *ScoresheetMutation) AddSoldierIDs(ids ...uuid.UUID) {
	if m.soldiers == nil {
		m.soldiers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.soldiers[ids[i]] = struct{}{}
	}
}

// ClearSoldiers clears the "soldiers" edge to the SoldierResult entity.
func (m *ScoresheetMutation) ClearSoldiers() {
	m.clearedsoldiers = true
}

// SoldiersCleared reports if the "soldiers" edge to the SoldierResult entity was cleared.
func (m *ScoresheetMutation) SoldiersCleared() bool {
	return m.clearedsoldiers
}

// RemoveSoldierIDs removes the "soldiers" edge to the SoldierResult entity by IDs.
func (m *ScoresheetMutation) RemoveSoldierIDs(ids ...uuid.UUID) {
	if m.removedsoldiers == nil {
		m.removedsoldiers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.soldiers, ids[i])
		m.removedsoldiers[ids[i]] = struct{}{}
	}
}

// RemovedSoldiers returns the removed IDs of the "soldiers" edge to the SoldierResult entity.
func (m *ScoresheetMutation) RemovedSoldiersIDs() (ids []uuid.UUID) {
	for id := range m.removedsoldiers {
		ids = append(ids, id)
	}
	return
}

// SoldiersIDs returns the "soldiers" edge IDs in the mutation.
func (m *ScoresheetMutation) SoldiersIDs() (ids []uuid.UUID) {
	for id := range m.soldiers {
		ids = append(ids, id)
	}
	return
}

// ResetSoldiers resets all changes to the "soldiers" edge.
func (m *ScoresheetMutation) ResetSoldiers() {
	m.soldiers = nil
	m.clearedsoldiers = false
	m.removedsoldiers = nil
}

// Where appends a list predicates to the ScoresheetMutation builder.
func (m *ScoresheetMutation) Where(ps ...predicate.Scoresheet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoresheetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoresheetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scoresheet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoresheetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoresheetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scoresheet).
func (m *ScoresheetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoresheetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, scoresheet.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, scoresheet.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, scoresheet.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, scoresheet.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, scoresheet.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, scoresheet.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoresheetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoresheet.FieldSourcePath:
		return m.SourcePath()
	case scoresheet.FieldContentHash:
		return m.ContentHash()
	case scoresheet.FieldFilename:
		return m.Filename()
	case scoresheet.FieldFileExt:
		return m.FileExt()
	case scoresheet.FieldFileSize:
		return m.FileSize()
	case scoresheet.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoresheetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoresheet.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case scoresheet.FieldContentHash:
		return m.OldContentHash(ctx)
	case scoresheet.FieldFilename:
		return m.OldFilename(ctx)
	case scoresheet.FieldFileExt:
		return m.OldFileExt(ctx)
	case scoresheet.FieldFileSize:
		return m.OldFileSize(ctx)
	case scoresheet.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scoresheet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoresheetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoresheet.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case scoresheet.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case scoresheet.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case scoresheet.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case scoresheet.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case scoresheet.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scoresheet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoresheetMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, scoresheet.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoresheetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoresheet.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoresheetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoresheet.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Scoresheet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoresheetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoresheetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoresheetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Scoresheet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoresheetMutation) ResetField(name string) error {
	switch name {
	case scoresheet.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case scoresheet.FieldContentHash:
		m.ResetContentHash()
		return nil
	case scoresheet.FieldFilename:
		m.ResetFilename()
		return nil
	case scoresheet.FieldFileExt:
		m.ResetFileExt()
		return nil
	case scoresheet.FieldFileSize:
		m.ResetFileSize()
		return nil
	case scoresheet.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Scoresheet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoresheetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.jobs != nil {
		edges = append(edges, scoresheet.EdgeJobs)
	}
	if m.soldiers != nil {
		edges = append(edges, scoresheet.EdgeSoldiers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoresheetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scoresheet.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case scoresheet.EdgeSoldiers:
		ids := make([]ent.Value, 0, len(m.soldiers))
		for id := range m.soldiers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoresheetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, scoresheet.EdgeJobs)
	}
	if m.removedsoldiers != nil {
		edges = append(edges, scoresheet.EdgeSoldiers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoresheetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scoresheet.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case scoresheet.EdgeSoldiers:
		ids := make([]ent.Value, 0, len(m.removedsoldiers))
		for id := range m.removedsoldiers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoresheetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjobs {
		edges = append(edges, scoresheet.EdgeJobs)
	}
	if m.clearedsoldiers {
		edges = append(edges, scoresheet.EdgeSoldiers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoresheetMutation) EdgeCleared(name string) bool {
	switch name {
	case scoresheet.EdgeJobs:
		return m.clearedjobs
	case scoresheet.EdgeSoldiers:
		return m.clearedsoldiers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoresheetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Scoresheet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoresheetMutation) ResetEdge(name string) error {
	switch name {
	case scoresheet.EdgeJobs:
		m.ResetJobs()
		return nil
	case scoresheet.EdgeSoldiers:
		m.ResetSoldiers()
		return nil
	}
	return fmt.Errorf("unknown Scoresheet edge %s", name)
}

// SoldierResultMutation represents an operation that mutates the SoldierResult nodes in the graph.
type SoldierResultMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	sit_up_reps       *int
	addsit_up_reps    *int
	push_up_reps      *int
	addpush_up_reps   *int
	run_time          *string
	confidence        *float32
	addconfidence     *float32
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	scoresheet        *uuid.UUID
	clearedscoresheet bool
	job               *uuid.UUID
	clearedjob        bool
	done              bool
	oldValue          func(context.Context) (*SoldierResult, error)
	predicates        []predicate.SoldierResult
}

var _ ent.Mutation = (*SoldierResultMutation)(nil)

// soldierresultOption allows management of the mutation configuration using functional options.
type soldierresultOption func(*SoldierResultMutation)

// newSoldierResultMutation creates new mutation for the SoldierResult entity.
func newSoldierResultMutation(c config, op Op, opts ...soldierresultOption) *SoldierResultMutation {
	m := &SoldierResultMutation{
		config:        c,
		op:            op,
		typ:           TypeSoldierResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSoldierResultID sets the ID field of the mutation.
func withSoldierResultID(id uuid.UUID) soldierresultOption {
	return func(m *SoldierResultMutation) {
		var (
			err   error
			once  sync.Once
			value *SoldierResult
		)
		m.oldValue = func(ctx context.Context) (*SoldierResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SoldierResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSoldierResult sets the old SoldierResult of the mutation.
func withSoldierResult(node *SoldierResult) soldierresultOption {
	return func(m *SoldierResultMutation) {
		m.oldValue = func(context.Context) (*SoldierResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SoldierResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SoldierResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SoldierResult entities.
func (m *SoldierResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SoldierResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SoldierResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SoldierResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScoresheetID sets the "scoresheet_id" field.
func (m *SoldierResultMutation) SetScoresheetID(u uuid.UUID) {
	m.scoresheet = &u
}

// ScoresheetID returns the value of the "scoresheet_id" field in the mutation.
func (m *SoldierResultMutation) ScoresheetID() (r uuid.UUID, exists bool) {
	v := m.scoresheet
	if v == nil {
		return
	}
	return *v, true
}

// OldScoresheetID returns the old "scoresheet_id" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldScoresheetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoresheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoresheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoresheetID: %w", err)
	}
	return oldValue.ScoresheetID, nil
}

// ResetScoresheetID resets all changes to the "scoresheet_id" field.
func (m *SoldierResultMutation) ResetScoresheetID() {
	m.scoresheet = nil
}

// SetJobID sets the "job_id" field.
func (m *SoldierResultMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *SoldierResultMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *SoldierResultMutation) ResetJobID() {
	m.job = nil
}

// SetName sets the "name" field.
func (m *SoldierResultMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SoldierResultMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SoldierResultMutation) ResetName() {
	m.name = nil
}

// SetSitUpReps sets the "sit_up_reps" field.
func (m *SoldierResultMutation) SetSitUpReps(i int) {
	m.sit_up_reps = &i
	m.addsit_up_reps = nil
}

// SitUpReps returns the value of the "sit_up_reps" field in the mutation.
func (m *SoldierResultMutation) SitUpReps() (r int, exists bool) {
	v := m.sit_up_reps
	if v == nil {
		return
	}
	return *v, true
}

// OldSitUpReps returns the old "sit_up_reps" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldSitUpReps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSitUpReps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSitUpReps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSitUpReps: %w", err)
	}
	return oldValue.SitUpReps, nil
}

// AddSitUpReps adds i to the "sit_up_reps" field.
func (m *SoldierResultMutation) AddSitUpReps(i int) {
	if m.addsit_up_reps != nil {
		*m.addsit_up_reps += i
	} else {
		m.addsit_up_reps = &i
	}
}

// AddedSitUpReps returns the value that was added to the "sit_up_reps" field in this mutation.
func (m *SoldierResultMutation) AddedSitUpReps() (r int, exists bool) {
	v := m.addsit_up_reps
	if v == nil {
		return
	}
	return *v, true
}

// ResetSitUpReps resets all changes to the "sit_up_reps" field.
func (m *SoldierResultMutation) ResetSitUpReps() {
	m.sit_up_reps = nil
	m.addsit_up_reps = nil
}

// SetPushUpReps sets the "push_up_reps" field.
func (m *SoldierResultMutation) SetPushUpReps(i int) {
	m.push_up_reps = &i
	m.addpush_up_reps = nil
}

// PushUpReps returns the value of the "push_up_reps" field in the mutation.
func (m *SoldierResultMutation) PushUpReps() (r int, exists bool) {
	v := m.push_up_reps
	if v == nil {
		return
	}
	return *v, true
}

// OldPushUpReps returns the old "push_up_reps" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldPushUpReps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushUpReps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushUpReps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushUpReps: %w", err)
	}
	return oldValue.PushUpReps, nil
}

// AddPushUpReps adds i to the "push_up_reps" field.
func (m *SoldierResultMutation) AddPushUpReps(i int) {
	if m.addpush_up_reps != nil {
		*m.addpush_up_reps += i
	} else {
		m.addpush_up_reps = &i
	}
}

// AddedPushUpReps returns the value that was added to the "push_up_reps" field in this mutation.
func (m *SoldierResultMutation) AddedPushUpReps() (r int, exists bool) {
	v := m.addpush_up_reps
	if v == nil {
		return
	}
	return *v, true
}

// ResetPushUpReps resets all changes to the "push_up_reps" field.
func (m *SoldierResultMutation) ResetPushUpReps() {
	m.push_up_reps = nil
	m.addpush_up_reps = nil
}

// SetRunTime sets the "run_time" field.
func (m *SoldierResultMutation) SetRunTime(s string) {
	m.run_time = &s
}

// RunTime returns the value of the "run_time" field in the mutation.
func (m *SoldierResultMutation) RunTime() (r string, exists bool) {
	v := m.run_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRunTime returns the old "run_time" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldRunTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunTime: %w", err)
	}
	return oldValue.RunTime, nil
}

// ResetRunTime resets all changes to the "run_time" field.
func (m *SoldierResultMutation) ResetRunTime() {
	m.run_time = nil
}

// SetConfidence sets the "confidence" field.
func (m *SoldierResultMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SoldierResultMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SoldierResultMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SoldierResultMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SoldierResultMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SoldierResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SoldierResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SoldierResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SoldierResultMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SoldierResultMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SoldierResult entity.
// If the SoldierResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SoldierResultMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SoldierResultMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearScoresheet clears the "scoresheet" edge to the Scoresheet entity.
func (m *SoldierResultMutation) ClearScoresheet() {
	m.clearedscoresheet = true
	m.clearedFields[soldierresult.FieldScoresheetID] = struct{}{}
}

// ScoresheetCleared reports if the "scoresheet" edge to the Scoresheet entity was cleared.
func (m *SoldierResultMutation) ScoresheetCleared() bool {
	return m.clearedscoresheet
}

// ScoresheetIDs returns the "scoresheet" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScoresheetID instead. It exists only for internal usage by the builders.
func (m *SoldierResultMutation) ScoresheetIDs() (ids []uuid.UUID) {
	if id := m.scoresheet; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScoresheet resets all changes to the "scoresheet" edge.
func (m *SoldierResultMutation) ResetScoresheet() {
	m.scoresheet = nil
	m.clearedscoresheet = false
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (m *SoldierResultMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[soldierresult.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractJob entity was cleared.
func (m *SoldierResultMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *SoldierResultMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *SoldierResultMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the SoldierResultMutation builder.
func (m *SoldierResultMutation) Where(ps ...predicate.SoldierResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SoldierResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SoldierResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SoldierResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SoldierResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SoldierResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SoldierResult).
func (m *SoldierResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SoldierResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.scoresheet != nil {
		fields = append(fields, soldierresult.FieldScoresheetID)
	}
	if m.job != nil {
		fields = append(fields, soldierresult.FieldJobID)
	}
	if m.name != nil {
		fields = append(fields, soldierresult.FieldName)
	}
	if m.sit_up_reps != nil {
		fields = append(fields, soldierresult.FieldSitUpReps)
	}
	if m.push_up_reps != nil {
		fields = append(fields, soldierresult.FieldPushUpReps)
	}
	if m.run_time != nil {
		fields = append(fields, soldierresult.FieldRunTime)
	}
	if m.confidence != nil {
		fields = append(fields, soldierresult.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, soldierresult.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, soldierresult.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SoldierResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case soldierresult.FieldScoresheetID:
		return m.ScoresheetID()
	case soldierresult.FieldJobID:
		return m.JobID()
	case soldierresult.FieldName:
		return m.Name()
	case soldierresult.FieldSitUpReps:
		return m.SitUpReps()
	case soldierresult.FieldPushUpReps:
		return m.PushUpReps()
	case soldierresult.FieldRunTime:
		return m.RunTime()
	case soldierresult.FieldConfidence:
		return m.Confidence()
	case soldierresult.FieldCreatedAt:
		return m.CreatedAt()
	case soldierresult.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SoldierResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case soldierresult.FieldScoresheetID:
		return m.OldScoresheetID(ctx)
	case soldierresult.FieldJobID:
		return m.OldJobID(ctx)
	case soldierresult.FieldName:
		return m.OldName(ctx)
	case soldierresult.FieldSitUpReps:
		return m.OldSitUpReps(ctx)
	case soldierresult.FieldPushUpReps:
		return m.OldPushUpReps(ctx)
	case soldierresult.FieldRunTime:
		return m.OldRunTime(ctx)
	case soldierresult.FieldConfidence:
		return m.OldConfidence(ctx)
	case soldierresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case soldierresult.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SoldierResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SoldierResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case soldierresult.FieldScoresheetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoresheetID(v)
		return nil
	case soldierresult.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case soldierresult.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case soldierresult.FieldSitUpReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSitUpReps(v)
		return nil
	case soldierresult.FieldPushUpReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushUpReps(v)
		return nil
	case soldierresult.FieldRunTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunTime(v)
		return nil
	case soldierresult.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case soldierresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case soldierresult.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SoldierResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SoldierResultMutation) AddedFields() []string {
	var fields []string
	if m.addsit_up_reps != nil {
		fields = append(fields, soldierresult.FieldSitUpReps)
	}
	if m.addpush_up_reps != nil {
		fields = append(fields, soldierresult.FieldPushUpReps)
	}
	if m.addconfidence != nil {
		fields = append(fields, soldierresult.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SoldierResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case soldierresult.FieldSitUpReps:
		return m.AddedSitUpReps()
	case soldierresult.FieldPushUpReps:
		return m.AddedPushUpReps()
	case soldierresult.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SoldierResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case soldierresult.FieldSitUpReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSitUpReps(v)
		return nil
	case soldierresult.FieldPushUpReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPushUpReps(v)
		return nil
	case soldierresult.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown SoldierResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SoldierResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SoldierResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SoldierResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SoldierResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SoldierResultMutation) ResetField(name string) error {
	switch name {
	case soldierresult.FieldScoresheetID:
		m.ResetScoresheetID()
		return nil
	case soldierresult.FieldJobID:
		m.ResetJobID()
		return nil
	case soldierresult.FieldName:
		m.ResetName()
		return nil
	case soldierresult.FieldSitUpReps:
		m.ResetSitUpReps()
		return nil
	case soldierresult.FieldPushUpReps:
		m.ResetPushUpReps()
		return nil
	case soldierresult.FieldRunTime:
		m.ResetRunTime()
		return nil
	case soldierresult.FieldConfidence:
		m.ResetConfidence()
		return nil
	case soldierresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case soldierresult.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SoldierResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SoldierResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.scoresheet != nil {
		edges = append(edges, soldierresult.EdgeScoresheet)
	}
	if m.job != nil {
		edges = append(edges, soldierresult.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SoldierResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case soldierresult.EdgeScoresheet:
		if id := m.scoresheet; id != nil {
			return []ent.Value{*id}
		}
	case soldierresult.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SoldierResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SoldierResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SoldierResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedscoresheet {
		edges = append(edges, soldierresult.EdgeScoresheet)
	}
	if m.clearedjob {
		edges = append(edges, soldierresult.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SoldierResultMutation) EdgeCleared(name string) bool {
	switch name {
	case soldierresult.EdgeScoresheet:
		return m.clearedscoresheet
	case soldierresult.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SoldierResultMutation) ClearEdge(name string) error {
	switch name {
	case soldierresult.EdgeScoresheet:
		m.ClearScoresheet()
		return nil
	case soldierresult.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown SoldierResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SoldierResultMutation) ResetEdge(name string) error {
	switch name {
	case soldierresult.EdgeScoresheet:
		m.ResetScoresheet()
		return nil
	case soldierresult.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown SoldierResult edge %s", name)
}
