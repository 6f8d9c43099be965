package gigflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/raulniraj/CampusGig/internal/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestLockForUpdateEmitsRowLock(t *testing.T) {
	db := dryRunDB(t)

	var gig models.Gig
	stmt := lockForUpdate(db).First(&gig, "id = ?", uuid.New()).Statement

	if sql := stmt.SQL.String(); !strings.Contains(sql, "FOR UPDATE") {
		t.Errorf("generated query %q carries no row lock", sql)
	}
}

func TestDuplicateProposalErrTranslation(t *testing.T) {
	if got := duplicateProposalErr(gorm.ErrDuplicatedKey); !errors.Is(got, ErrDuplicateProposal) {
		t.Errorf("unique violation translated to %v, want ErrDuplicateProposal", got)
	}

	passthrough := errors.New("connection reset by peer")
	if got := duplicateProposalErr(passthrough); got != passthrough {
		t.Errorf("unrelated error rewritten to %v", got)
	}
}

func TestProposalExistsPropagatesQueryError(t *testing.T) {
	db := dryRunDB(t)
	db.Error = errors.New("connection reset by peer")

	s := &Service{DB: db}
	if _, err := s.proposalExists(uuid.New(), uuid.New()); err == nil {
		t.Error("expected the failed count query's error to surface")
	}
}

func TestValidateErrorsAreValidationErrors(t *testing.T) {
	var v ValidationError
	if err := (GigInput{}).Validate(); !errors.As(err, &v) {
		t.Errorf("gig input error %v is not a ValidationError", err)
	}
	if err := (ProposalInput{}).Validate(); !errors.As(err, &v) {
		t.Errorf("proposal input error %v is not a ValidationError", err)
	}
}
