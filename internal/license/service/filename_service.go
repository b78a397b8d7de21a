package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
)

// filenameService implements FilenameService with unidecode transliteration.
type filenameService struct {
	now func() time.Time
}

// LicenseFileName names the rendered license artifact.
func (f *filenameService) LicenseFileName(
	companyName, productName string,
	usersCount int,
	expiresAt time.Time,
) string {
	base := transliterate(companyName, productName, usersCount)
	return fmt.Sprintf("%s_%s.txt", base, expiresAt.Format("2006-01-02"))
}

// DigestFileName names the stored machine digest.
func (f *filenameService) DigestFileName(companyName, productName string, usersCount int) string {
	base := transliterate(companyName, productName, usersCount)
	return fmt.Sprintf("%s_%s", base, f.now().UTC().Format("2006-01-02"))
}

// transliterate converts license fields to an ASCII file name base,
// collapsing whitespace runs to single underscores.
func transliterate(companyName, productName string, usersCount int) string {
	ascii := unidecode.Unidecode(fmt.Sprintf("%s_%s_%d", companyName, productName, usersCount))
	return strings.Join(strings.Fields(ascii), "_")
}

// NewFilenameService creates a FilenameService using the system clock.
func NewFilenameService() FilenameService {
	return &filenameService{now: time.Now}
}

// NewFilenameServiceWithClock creates a FilenameService with an injectable
// clock for tests.
func NewFilenameServiceWithClock(now func() time.Time) FilenameService {
	return &filenameService{now: now}
}
