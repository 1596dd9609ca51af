package queries

import (
	"context"

	"github.com/semestra/semestra/internal/registration/domain"
	"github.com/stretchr/testify/mock"
)

// mockCourseRepo is a mock implementation of domain.CourseRepository.
type mockCourseRepo struct {
	mock.Mock
}

func (m *mockCourseRepo) Save(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *mockCourseRepo) FindByCourseID(ctx context.Context, id domain.CourseID) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *mockCourseRepo) Delete(ctx context.Context, id domain.CourseID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockPlanRepo is a mock implementation of domain.PlanRepository.
type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) Save(ctx context.Context, plan *domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepo) FindByTerm(ctx context.Context, term string) (*domain.Plan, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func mustCourse(category, number, spec string) *domain.Course {
	course, err := domain.NewCourseFromSpec(category, number, spec)
	if err != nil {
		panic(err)
	}
	return course
}
