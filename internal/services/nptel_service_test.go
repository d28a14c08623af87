package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

func newNPTELServiceForTest(t *testing.T) (NPTELService, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	return NewNPTELService(repo, testLogger(), validator.New()), repo
}

func TestAddAssignment_CreatesCourseWithLinkOnParent(t *testing.T) {
	svc, repo := newNPTELServiceForTest(t)

	outcome, err := svc.AddAssignment(context.Background(), &AddAssignmentRequest{
		CourseName: "Discrete Mathematics",
		Link:       "https://nptel.ac.in/courses/106106183",
		WeekNum:    1,
		Questions:  []models.Question{{Question: "Is 2 prime?", Answer: "yes"}},
	})
	if err != nil {
		t.Fatalf("AddAssignment() error = %v", err)
	}
	if outcome != OutcomeParentCreated {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeParentCreated)
	}

	course := repo.nptels.courses[0]
	if course.Link != "https://nptel.ac.in/courses/106106183" {
		t.Errorf("course link = %q, want stored on parent", course.Link)
	}
	if len(course.Assignments) != 1 || course.Assignments[0].WeekNum != 1 {
		t.Fatalf("assignments = %+v, want one week-1 entry", course.Assignments)
	}
}

func TestAddAssignment_AppendsQuestionsToExistingWeek(t *testing.T) {
	svc, repo := newNPTELServiceForTest(t)
	ctx := context.Background()

	first := []models.Question{{Question: "Q1", Answer: "a"}}
	second := []models.Question{{Question: "Q2", Answer: "b"}}

	if _, err := svc.AddAssignment(ctx, &AddAssignmentRequest{
		CourseName: "Discrete Mathematics", WeekNum: 1, Questions: first,
	}); err != nil {
		t.Fatalf("first AddAssignment() error = %v", err)
	}

	outcome, err := svc.AddAssignment(ctx, &AddAssignmentRequest{
		CourseName: "Discrete Mathematics", WeekNum: 1, Questions: second,
	})
	if err != nil {
		t.Fatalf("second AddAssignment() error = %v", err)
	}
	if outcome != OutcomeContentUpdated {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeContentUpdated)
	}

	got := repo.nptels.courses[0].Assignments[0].Content
	want := []models.Question{{Question: "Q1", Answer: "a"}, {Question: "Q2", Answer: "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("content = %v, want %v", got, want)
	}
}

func TestAddAssignment_NewWeekCreatesAssignment(t *testing.T) {
	svc, repo := newNPTELServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.AddAssignment(ctx, &AddAssignmentRequest{
		CourseName: "Discrete Mathematics", WeekNum: 1,
		Questions: []models.Question{{Question: "Q1"}},
	}); err != nil {
		t.Fatalf("AddAssignment() error = %v", err)
	}

	outcome, err := svc.AddAssignment(ctx, &AddAssignmentRequest{
		CourseName: "Discrete Mathematics", WeekNum: 2,
		Questions: []models.Question{{Question: "Q2"}},
	})
	if err != nil {
		t.Fatalf("AddAssignment() error = %v", err)
	}
	if outcome != OutcomeChildCreated {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeChildCreated)
	}
	if n := len(repo.nptels.courses); n != 1 {
		t.Errorf("stored courses = %d, want 1", n)
	}
	if n := len(repo.nptels.courses[0].Assignments); n != 2 {
		t.Errorf("assignments = %d, want 2", n)
	}
}
