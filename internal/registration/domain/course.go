package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sharedDomain "github.com/semestra/semestra/internal/shared/domain"
)

var (
	// ErrInvalidCourseSpec indicates a course could not be built from its input.
	ErrInvalidCourseSpec = errors.New("invalid course spec")
	// ErrDuplicateCourse indicates the catalog already holds the identity.
	ErrDuplicateCourse = errors.New("course already exists")
	// ErrCourseNotFound indicates no course matched the given identity.
	ErrCourseNotFound = errors.New("course not found")
)

// CourseID identifies a course by category and number, e.g. MATH 301.
type CourseID struct {
	Category string
	Number   string
}

// NewCourseID builds a CourseID from trimmed category and number.
func NewCourseID(category, number string) CourseID {
	return CourseID{
		Category: strings.ToUpper(strings.TrimSpace(category)),
		Number:   strings.TrimSpace(number),
	}
}

// String renders the identity in catalog form, e.g. "MATH 301".
func (id CourseID) String() string {
	return id.Category + " " + id.Number
}

// Course is a schedulable unit: a category, a course number, and one or
// more weekly time slots.
type Course struct {
	sharedDomain.BaseEntity
	category string
	number   string
	slots    []TimeSlot
}

// NewCourse creates a course from an already-parsed slot list.
func NewCourse(category, number string, slots []TimeSlot) (*Course, error) {
	id := NewCourseID(category, number)
	if id.Category == "" || id.Number == "" {
		return nil, fmt.Errorf("%w: category and number are required", ErrInvalidCourseSpec)
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: at least one time slot is required", ErrInvalidCourseSpec)
	}
	return &Course{
		BaseEntity: sharedDomain.NewBaseEntity(),
		category:   id.Category,
		number:     id.Number,
		slots:      slots,
	}, nil
}

// NewCourseFromSpec creates a course from slot-spec text such as
// "MWF, 8:00am-9:00am, TTH, 1:00pm-2:00pm".
func NewCourseFromSpec(category, number, spec string) (*Course, error) {
	slots, err := ParseSlotSpec(spec)
	if err != nil {
		return nil, err
	}
	return NewCourse(category, number, slots)
}

// ParseSlotSpec parses comma-separated day-code/time-range pairs. Each pair
// becomes one TimeSlot.
func ParseSlotSpec(spec string) ([]TimeSlot, error) {
	fields := strings.Split(spec, ",")
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty slot spec", ErrInvalidCourseSpec)
	}
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("%w: day codes and time ranges must come in pairs", ErrInvalidCourseSpec)
	}

	slots := make([]TimeSlot, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		slot, err := parseSlotPair(parts[i], parts[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCourseSpec, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func parseSlotPair(dayCode, timeRange string) (TimeSlot, error) {
	days, err := ParseDays(dayCode)
	if err != nil {
		return TimeSlot{}, err
	}
	startStr, endStr, ok := strings.Cut(timeRange, "-")
	if !ok {
		return TimeSlot{}, fmt.Errorf("%w: malformed time range %q", ErrInvalidSlot, timeRange)
	}
	start, err := ParseClockTime(startStr)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := ParseClockTime(endStr)
	if err != nil {
		return TimeSlot{}, err
	}
	return NewTimeSlot(days, start, end)
}

func (c *Course) Category() string  { return c.category }
func (c *Course) Number() string    { return c.number }
func (c *Course) Slots() []TimeSlot { return c.slots }

// CourseID returns the course identity.
func (c *Course) CourseID() CourseID {
	return CourseID{Category: c.category, Number: c.number}
}

// ConflictsWith reports whether any slot of c overlaps any slot of other.
func (c *Course) ConflictsWith(other *Course) bool {
	for _, mine := range c.slots {
		for _, theirs := range other.slots {
			if mine.Overlaps(theirs) {
				return true
			}
		}
	}
	return false
}

// SlotSpec renders all slots in catalog form, the inverse of ParseSlotSpec.
func (c *Course) SlotSpec() string {
	parts := make([]string, 0, len(c.slots)*2)
	for _, slot := range c.slots {
		parts = append(parts, slot.Days().String(), slot.Start().String()+"-"+slot.End().String())
	}
	return strings.Join(parts, ", ")
}

// WeeklyMinutes returns the total weekly meeting minutes across all slots.
func (c *Course) WeeklyMinutes() int {
	total := 0
	for _, slot := range c.slots {
		total += slot.Minutes()
	}
	return total
}

// Clone returns a copy with the same identity and slots. The plan keeps its
// own copy of an accepted course so catalog edits never mutate the plan.
func (c *Course) Clone() *Course {
	slots := make([]TimeSlot, len(c.slots))
	copy(slots, c.slots)
	return &Course{
		BaseEntity: sharedDomain.RehydrateBaseEntity(c.ID(), c.CreatedAt(), c.UpdatedAt()),
		category:   c.category,
		number:     c.number,
		slots:      slots,
	}
}

// RehydrateCourse recreates a course from persisted state.
func RehydrateCourse(
	id uuid.UUID,
	category, number string,
	slots []TimeSlot,
	createdAt, updatedAt time.Time,
) *Course {
	return &Course{
		BaseEntity: sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		category:   category,
		number:     number,
		slots:      slots,
	}
}
