package titulares

import (
	"fmt"
	"time"
)

// PartitionKey computes the output location for a batch of headlines.
// The key is fully deterministic given the source and date, so repeated
// runs on the same day overwrite the same destination.
// Example: headlines/final/periodico=eltiempo/year=2024/month=03/day=05/eltiempo.csv
func PartitionKey(source Source, t time.Time) string {
	return fmt.Sprintf("headlines/final/periodico=%s/year=%04d/month=%02d/day=%02d/%s.csv",
		source, t.Year(), int(t.Month()), t.Day(), source)
}

// RawObjectKey computes the storage location for one day's raw download of
// a source's front page.
// Example: headlines/raw/eltiempo-2024-03-05.html
func RawObjectKey(source Source, t time.Time) string {
	return fmt.Sprintf("headlines/raw/%s-%s.html", source, t.Format("2006-01-02"))
}
