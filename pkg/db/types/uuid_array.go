package dbtypes

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUIDArray maps a Postgres uuid[] column onto a slice of UUIDs. Resume rows
// use it for their section reference lists.
type UUIDArray []uuid.UUID

func (a *UUIDArray) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = UUIDArray{}
		return nil
	case string:
		return a.decodeLiteral(v)
	case []byte:
		return a.decodeLiteral(string(v))
	}
	return fmt.Errorf("UUIDArray: cannot scan %T", src)
}

// Value encodes the slice as a Postgres array literal, e.g. {id1,id2}.
func (a UUIDArray) Value() (driver.Value, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(id.String())
	}
	b.WriteByte('}')
	return b.String(), nil
}

func (a *UUIDArray) decodeLiteral(lit string) error {
	lit = strings.TrimSpace(lit)
	lit = strings.TrimPrefix(lit, "{")
	lit = strings.TrimSuffix(lit, "}")
	if strings.TrimSpace(lit) == "" {
		*a = UUIDArray{}
		return nil
	}

	elems := strings.Split(lit, ",")
	ids := make(UUIDArray, len(elems))
	for i, elem := range elems {
		elem = strings.Trim(strings.TrimSpace(elem), `"`)
		id, err := uuid.Parse(elem)
		if err != nil {
			return fmt.Errorf("UUIDArray: element %d: %w", i, err)
		}
		ids[i] = id
	}
	*a = ids
	return nil
}
