package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/galaevents/seating-service/internal/catalog"
	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/model"
)

func testAttendees() []model.Attendee {
	cfg := config.CatalogConfig{Attendees: 400, Tables: 40, Capacity: 10, Columns: 8, Rows: 5}
	return catalog.GenerateAttendees(cfg, time.Now())
}

func TestFindAccentAndCaseInsensitive(t *testing.T) {
	attendees := testAttendees()

	a := Find(attendees, "María", "maria.garcia1@email.com")
	assert.NotNil(t, a)
	assert.Equal(t, 1, a.ID)

	b := Find(attendees, "maria", "MARIA.GARCIA1@EMAIL.COM")
	assert.NotNil(t, b)
	assert.Equal(t, a.ID, b.ID)
}

func TestFindPartialName(t *testing.T) {
	attendees := testAttendees()

	// substring of last name alone
	a := Find(attendees, "garc", "maria.garcia1@email.com")
	assert.NotNil(t, a)
	assert.Equal(t, 1, a.ID)

	// substring of the full "first last" form, crossing the space
	b := Find(attendees, "ria gar", "maria.garcia1@email.com")
	assert.NotNil(t, b)
	assert.Equal(t, 1, b.ID)
}

func TestFindEmptyNameMatchesAnyName(t *testing.T) {
	attendees := testAttendees()
	a := Find(attendees, "", "maria.rodriguez2@email.com")
	assert.NotNil(t, a)
	assert.Equal(t, 2, a.ID)
}

func TestFindEmailMandatoryAndExact(t *testing.T) {
	attendees := testAttendees()

	// right name, wrong email
	assert.Nil(t, Find(attendees, "María", "maria.garcia999@email.com"))

	// right email, unrelated name
	assert.Nil(t, Find(attendees, "zzz", "maria.garcia1@email.com"))

	// prefix of an email is not a match
	assert.Nil(t, Find(attendees, "María", "maria.garcia1@email"))
}

func TestFindIndependentOfAssignmentState(t *testing.T) {
	attendees := testAttendees()
	tableID, seat := 3, 4
	attendees[0].TableID = &tableID
	attendees[0].Seat = &seat

	a := Find(attendees, "garcía", "maria.garcia1@email.com")
	assert.NotNil(t, a)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 3, *a.TableID)
}

func TestFindReturnsCopy(t *testing.T) {
	attendees := testAttendees()
	a := Find(attendees, "", "maria.garcia1@email.com")
	assert.NotNil(t, a)
	a.FirstName = "mutated"
	assert.Equal(t, "María", attendees[0].FirstName)
}
