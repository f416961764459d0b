// Package legacy decodes fixed-width order files from the legacy system
// and extracts them into normalized User and Order aggregates.
package legacy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/yungbote/orderbridge-backend/internal/pkg/errors"
	"github.com/yungbote/orderbridge-backend/internal/types"
)

// Fixed byte offsets of each field within a 95-character line.
const (
	userIDStart    = 0
	userIDEnd      = 10
	userNameEnd    = 55
	orderIDEnd     = 65
	productIDEnd   = 75
	valueEnd       = 87
	dateEnd        = 95
	lineWidth      = dateEnd
	maxID          = 9999999999
	maxValue       = 9999999999.99
	maxUserNameLen = 45
)

// Decode parses a whole legacy order file. Blank lines are skipped; every
// other line must be exactly decodable under the fixed-width layout.
// The contract is all-or-nothing: the first bad line fails the entire
// call with ErrDecodeFailed and no partial results.
func Decode(raw string) ([]types.LegacyRecord, error) {
	lines := strings.Split(raw, "\n")
	records := make([]types.LegacyRecord, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", pkgerrors.ErrDecodeFailed, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeLine(line string) (types.LegacyRecord, error) {
	var rec types.LegacyRecord

	if len(line) < lineWidth {
		return rec, fmt.Errorf("line is %d characters, need %d", len(line), lineWidth)
	}

	userID, err := parseID(line[userIDStart:userIDEnd], "user id")
	if err != nil {
		return rec, err
	}
	userName := strings.TrimSpace(line[userIDEnd:userNameEnd])
	if userName == "" || len(userName) > maxUserNameLen {
		return rec, fmt.Errorf("user name %q out of bounds", userName)
	}
	orderID, err := parseID(line[userNameEnd:orderIDEnd], "order id")
	if err != nil {
		return rec, err
	}
	productID, err := parseID(line[orderIDEnd:productIDEnd], "product id")
	if err != nil {
		return rec, err
	}
	value, err := parseValue(line[productIDEnd:valueEnd])
	if err != nil {
		return rec, err
	}
	date, err := parseDate(line[valueEnd:dateEnd])
	if err != nil {
		return rec, err
	}

	rec = types.LegacyRecord{
		UserID:    userID,
		UserName:  userName,
		OrderID:   orderID,
		ProductID: productID,
		Value:     value,
		Date:      date,
	}
	return rec, nil
}

func parseID(field, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, field)
	}
	if id < 0 || id > maxID {
		return 0, fmt.Errorf("%s %d out of range", name, id)
	}
	return id, nil
}

func parseValue(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", field)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxValue {
		return 0, fmt.Errorf("value %v out of range", v)
	}
	return v, nil
}

// parseDate reads a YYYYMMDD field. time.Date normalizes out-of-range
// components (month 13 rolls into January), so the constructed date must
// reproduce the parsed year/month/day to be accepted.
func parseDate(field string) (time.Time, error) {
	s := strings.TrimSpace(field)
	if len(s) != 8 {
		return time.Time{}, fmt.Errorf("bad date %q", field)
	}
	year, errY := strconv.Atoi(s[0:4])
	month, errM := strconv.Atoi(s[4:6])
	day, errD := strconv.Atoi(s[6:8])
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, fmt.Errorf("bad date %q", field)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("date %q is not a real calendar date", s)
	}
	return d, nil
}
