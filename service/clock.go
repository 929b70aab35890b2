package service

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DayLayout       = time.DateOnly
	TimestampLayout = time.DateTime
)

// Clock 当前时间, 每个请求都重新取值
type Clock func() time.Time

func ProvideClock() Clock {
	return time.Now
}

// DateOf 取日历日期, 按 UTC 零点存储
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func ParseDay(s string) (datatypes.Date, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
