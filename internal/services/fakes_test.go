package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
)

// fakeRepository is an in-memory repositories.Repository used by service
// tests. It deep-copies documents on the way in and out so services cannot
// mutate stored state without an explicit Update.
type fakeRepository struct {
	users   *fakeUserRepo
	courses *fakeCourseRepo
	nptels  *fakeNPTELRepo
	files   *fakeFileRepo
	admins  *fakeAdminRepo
	helps   *fakeHelpRepo
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:   &fakeUserRepo{},
		courses: &fakeCourseRepo{},
		nptels:  &fakeNPTELRepo{},
		files:   &fakeFileRepo{},
		admins:  &fakeAdminRepo{},
		helps:   &fakeHelpRepo{},
	}
}

func (r *fakeRepository) User() repositories.UserRepository     { return r.users }
func (r *fakeRepository) Course() repositories.CourseRepository { return r.courses }
func (r *fakeRepository) NPTEL() repositories.NPTELRepository   { return r.nptels }
func (r *fakeRepository) File() repositories.FileRepository     { return r.files }
func (r *fakeRepository) Admin() repositories.AdminRepository   { return r.admins }
func (r *fakeRepository) Help() repositories.HelpRepository     { return r.helps }

func (r *fakeRepository) Ping(ctx context.Context) error  { return nil }
func (r *fakeRepository) Close(ctx context.Context) error { return nil }

// ===== users =====

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

// ===== courses =====

type fakeCourseRepo struct {
	courses     []models.Course
	createCalls int
	updateCalls int
}

func cloneCourse(c models.Course) models.Course {
	out := c
	out.Semesters = make([]models.Semester, len(c.Semesters))
	for i, sem := range c.Semesters {
		out.Semesters[i] = sem
		out.Semesters[i].Subjects = append([]string(nil), sem.Subjects...)
	}
	return out
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	f.createCalls++
	course.ID = primitive.NewObjectID()
	f.courses = append(f.courses, cloneCourse(*course))
	return nil
}

func (f *fakeCourseRepo) GetByName(ctx context.Context, name string) (*models.Course, error) {
	for i := range f.courses {
		if f.courses[i].CourseName == name {
			c := cloneCourse(f.courses[i])
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	f.updateCalls++
	for i := range f.courses {
		if f.courses[i].ID == course.ID {
			f.courses[i] = cloneCourse(*course)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, len(f.courses))
	for i := range f.courses {
		c := cloneCourse(f.courses[i])
		out[i] = &c
	}
	return out, nil
}

// ===== nptel =====

type fakeNPTELRepo struct {
	courses     []models.NPTELCourse
	createCalls int
	updateCalls int
}

func cloneNPTEL(c models.NPTELCourse) models.NPTELCourse {
	out := c
	out.Assignments = make([]models.Assignment, len(c.Assignments))
	for i, a := range c.Assignments {
		out.Assignments[i] = a
		out.Assignments[i].Content = append([]models.Question(nil), a.Content...)
	}
	return out
}

func (f *fakeNPTELRepo) Create(ctx context.Context, course *models.NPTELCourse) error {
	f.createCalls++
	course.ID = primitive.NewObjectID()
	f.courses = append(f.courses, cloneNPTEL(*course))
	return nil
}

func (f *fakeNPTELRepo) GetByName(ctx context.Context, name string) (*models.NPTELCourse, error) {
	for i := range f.courses {
		if f.courses[i].CourseName == name {
			c := cloneNPTEL(f.courses[i])
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeNPTELRepo) Update(ctx context.Context, course *models.NPTELCourse) error {
	f.updateCalls++
	for i := range f.courses {
		if f.courses[i].ID == course.ID {
			f.courses[i] = cloneNPTEL(*course)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeNPTELRepo) List(ctx context.Context) ([]*models.NPTELCourse, error) {
	out := make([]*models.NPTELCourse, len(f.courses))
	for i := range f.courses {
		c := cloneNPTEL(f.courses[i])
		out[i] = &c
	}
	return out, nil
}

// ===== files =====

type fakeFileRepo struct {
	files []models.FileRecord
	now   time.Time
}

func (f *fakeFileRepo) Create(ctx context.Context, file *models.FileRecord) error {
	file.ID = primitive.NewObjectID()
	if file.CreatedAt.IsZero() {
		// Monotonic timestamps so ordering tests are deterministic
		f.now = f.now.Add(time.Second)
		file.CreatedAt = f.now
	}
	f.files = append(f.files, *file)
	return nil
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id string) (*models.FileRecord, error) {
	for i := range f.files {
		if f.files[i].ID.Hex() == id {
			rec := f.files[i]
			return &rec, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeFileRepo) List(ctx context.Context) ([]*models.FileRecord, error) {
	out := make([]*models.FileRecord, len(f.files))
	for i := range f.files {
		rec := f.files[i]
		out[i] = &rec
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ===== admins =====

type fakeAdminRepo struct {
	admins []models.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	f.admins = append(f.admins, *admin)
	return nil
}

func (f *fakeAdminRepo) List(ctx context.Context) ([]*models.Admin, error) {
	out := make([]*models.Admin, len(f.admins))
	for i := range f.admins {
		a := f.admins[i]
		out[i] = &a
	}
	return out, nil
}

// ===== helps =====

type fakeHelpRepo struct {
	helps []models.Help
}

func (f *fakeHelpRepo) Create(ctx context.Context, help *models.Help) error {
	help.ID = primitive.NewObjectID()
	f.helps = append(f.helps, *help)
	return nil
}

func (f *fakeHelpRepo) List(ctx context.Context) ([]*models.Help, error) {
	out := make([]*models.Help, len(f.helps))
	for i := range f.helps {
		h := f.helps[i]
		out[i] = &h
	}
	return out, nil
}
