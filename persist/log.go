package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// lineFormatter renders "2006-01-02 15:04:05 - message" lines, the
// format the log-scraping checks expect.
type lineFormatter struct{}

// Format implements logrus.Formatter.
func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%s - %s\n", e.Time.Format("2006-01-02 15:04:05"), e.Message)), nil
}

// OpenDailyLog opens logs/<date>_<name>.log under base and returns
// a logger writing to it plus a close function. When truncate is
// set the file is regenerated instead of appended to.
func OpenDailyLog(base, name string, truncate bool) (*logrus.Logger, func() error, error) {
	dir := filepath.Join(base, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), name))

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, nil, err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.InfoLevel)

	return l, f.Close, nil
}
