package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// PathUUID parses the named mux path variable as a UUID.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s empty", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s invalid: %w", name, err)
	}
	return id, nil
}

// PathInt parses the named mux path variable as a positive integer.
func PathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, fmt.Errorf("%s NaN: %w", name, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("%s must be greater than 0", name)
	}
	return v, nil
}

const DateLayout = "2006-01-02"

// PathDate parses the named mux path variable as a YYYY-MM-DD date.
func PathDate(r *http.Request, name string) (time.Time, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s empty", name)
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s invalid, expected YYYY-MM-DD", name)
	}
	return d, nil
}

// IDRange is the body of the delete-id-range endpoints.
type IDRange struct {
	IDs []uuid.UUID `json:"id_range"`
}

func (r IDRange) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("id_range must not be empty")
	}
	return nil
}

// DateRange is the body of the delete-date-range endpoints: a [from, to] pair, both inclusive.
type DateRange struct {
	Dates []string `json:"date_range"`
}

func (r DateRange) Bounds() (from, to time.Time, err error) {
	if len(r.Dates) != 2 {
		return from, to, errors.New("date_range must hold exactly two dates")
	}
	if from, err = time.Parse(DateLayout, r.Dates[0]); err != nil {
		return from, to, fmt.Errorf("date_range from invalid, expected YYYY-MM-DD")
	}
	if to, err = time.Parse(DateLayout, r.Dates[1]); err != nil {
		return from, to, fmt.Errorf("date_range to invalid, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return from, to, errors.New("date_range to is before from")
	}
	return from, to, nil
}
