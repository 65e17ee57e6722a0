// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// ContentRoutineTable represents the 'content.routine' table.
type ContentRoutineTable struct {
	Table         string
	ID            string
	TitleAr       string
	TitleEn       string
	DescriptionAr string
	DescriptionEn string
	Category      string
	CreatedAt     string
}

// ContentRoutine is the schema definition for content.routine.
var ContentRoutine = ContentRoutineTable{
	Table:         "content.routine",
	ID:            "id",
	TitleAr:       "title_ar",
	TitleEn:       "title_en",
	DescriptionAr: "description_ar",
	DescriptionEn: "description_en",
	Category:      "category",
	CreatedAt:     "created_at",
}

func (t ContentRoutineTable) Columns() []string {
	return []string{
		t.ID, t.TitleAr, t.TitleEn, t.DescriptionAr, t.DescriptionEn,
		t.Category, t.CreatedAt,
	}
}

// ContentRoutineStepTable represents the 'content.routine_step' table.
//
// Steps are the canonical child-row representation: a dense 1-based position
// per routine, replacing the embedded parallel arrays of earlier schema
// iterations.
type ContentRoutineStepTable struct {
	Table     string
	ID        string
	RoutineID string
	Position  string
	TitleAr   string
	TitleEn   string
	BodyAr    string
	BodyEn    string
}

// ContentRoutineStep is the schema definition for content.routine_step.
var ContentRoutineStep = ContentRoutineStepTable{
	Table:     "content.routine_step",
	ID:        "id",
	RoutineID: "routine_id",
	Position:  "position",
	TitleAr:   "title_ar",
	TitleEn:   "title_en",
	BodyAr:    "body_ar",
	BodyEn:    "body_en",
}

func (t ContentRoutineStepTable) Columns() []string {
	return []string{
		t.ID, t.RoutineID, t.Position, t.TitleAr, t.TitleEn, t.BodyAr, t.BodyEn,
	}
}
