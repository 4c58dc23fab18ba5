// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/db/ent/schema"
	"github.com/kyletan/ippt-tracker/gen/ent/extractjob"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
	"github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[2].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[3].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[5].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[9].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	scoresheetFields := schema.Scoresheet{}.Fields()
	_ = scoresheetFields
	// scoresheetDescSourcePath is the schema descriptor for source_path field.
	scoresheetDescSourcePath := scoresheetFields[1].Descriptor()
	// scoresheet.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	scoresheet.SourcePathValidator = scoresheetDescSourcePath.Validators[0].(func(string) error)
	// scoresheetDescContentHash is the schema descriptor for content_hash field.
	scoresheetDescContentHash := scoresheetFields[2].Descriptor()
	// scoresheet.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	scoresheet.ContentHashValidator = scoresheetDescContentHash.Validators[0].(func([]byte) error)
	// scoresheetDescFilename is the schema descriptor for filename field.
	scoresheetDescFilename := scoresheetFields[3].Descriptor()
	// scoresheet.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	scoresheet.FilenameValidator = scoresheetDescFilename.Validators[0].(func(string) error)
	// scoresheetDescFileExt is the schema descriptor for file_ext field.
	scoresheetDescFileExt := scoresheetFields[4].Descriptor()
	// scoresheet.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	scoresheet.FileExtValidator = scoresheetDescFileExt.Validators[0].(func(string) error)
	// scoresheetDescFileSize is the schema descriptor for file_size field.
	scoresheetDescFileSize := scoresheetFields[5].Descriptor()
	// scoresheet.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	scoresheet.FileSizeValidator = scoresheetDescFileSize.Validators[0].(func(int) error)
	// scoresheetDescUploadedAt is the schema descriptor for uploaded_at field.
	scoresheetDescUploadedAt := scoresheetFields[6].Descriptor()
	// scoresheet.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	scoresheet.DefaultUploadedAt = scoresheetDescUploadedAt.Default.(func() time.Time)
	// scoresheetDescID is the schema descriptor for id field.
	scoresheetDescID := scoresheetFields[0].Descriptor()
	// scoresheet.DefaultID holds the default value on creation for the id field.
	scoresheet.DefaultID = scoresheetDescID.Default.(func() uuid.UUID)
	soldierresultFields := schema.SoldierResult{}.Fields()
	_ = soldierresultFields
	// soldierresultDescName is the schema descriptor for name field.
	soldierresultDescName := soldierresultFields[3].Descriptor()
	// soldierresult.NameValidator is a validator for the "name" field. It is called by the builders before save.
	soldierresult.NameValidator = soldierresultDescName.Validators[0].(func(string) error)
	// soldierresultDescSitUpReps is the schema descriptor for sit_up_reps field.
	soldierresultDescSitUpReps := soldierresultFields[4].Descriptor()
	// soldierresult.DefaultSitUpReps holds the default value on creation for the sit_up_reps field.
	soldierresult.DefaultSitUpReps = soldierresultDescSitUpReps.Default.(int)
	// soldierresult.SitUpRepsValidator is a validator for the "sit_up_reps" field. It is called by the builders before save.
	soldierresult.SitUpRepsValidator = soldierresultDescSitUpReps.Validators[0].(func(int) error)
	// soldierresultDescPushUpReps is the schema descriptor for push_up_reps field.
	soldierresultDescPushUpReps := soldierresultFields[5].Descriptor()
	// soldierresult.DefaultPushUpReps holds the default value on creation for the push_up_reps field.
	soldierresult.DefaultPushUpReps = soldierresultDescPushUpReps.Default.(int)
	// soldierresult.PushUpRepsValidator is a validator for the "push_up_reps" field. It is called by the builders before save.
	soldierresult.PushUpRepsValidator = soldierresultDescPushUpReps.Validators[0].(func(int) error)
	// soldierresultDescRunTime is the schema descriptor for run_time field.
	soldierresultDescRunTime := soldierresultFields[6].Descriptor()
	// soldierresult.DefaultRunTime holds the default value on creation for the run_time field.
	soldierresult.DefaultRunTime = soldierresultDescRunTime.Default.(string)
	// soldierresultDescConfidence is the schema descriptor for confidence field.
	soldierresultDescConfidence := soldierresultFields[7].Descriptor()
	// soldierresult.DefaultConfidence holds the default value on creation for the confidence field.
	soldierresult.DefaultConfidence = soldierresultDescConfidence.Default.(float32)
	// soldierresultDescCreatedAt is the schema descriptor for created_at field.
	soldierresultDescCreatedAt := soldierresultFields[8].Descriptor()
	// soldierresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	soldierresult.DefaultCreatedAt = soldierresultDescCreatedAt.Default.(func() time.Time)
	// soldierresultDescUpdatedAt is the schema descriptor for updated_at field.
	soldierresultDescUpdatedAt := soldierresultFields[9].Descriptor()
	// soldierresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	soldierresult.DefaultUpdatedAt = soldierresultDescUpdatedAt.Default.(func() time.Time)
	// soldierresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	soldierresult.UpdateDefaultUpdatedAt = soldierresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// soldierresultDescID is the schema descriptor for id field.
	soldierresultDescID := soldierresultFields[0].Descriptor()
	// soldierresult.DefaultID holds the default value on creation for the id field.
	soldierresult.DefaultID = soldierresultDescID.Default.(func() uuid.UUID)
}
