package holdemtable

import (
	"github.com/sirupsen/logrus"
	"github.com/weedbox/holdemtable/evaluator"
)

type TableOpt func(*Table)

// WithLogger replaces logrus.StandardLogger() as the table logger.
func WithLogger(logger logrus.FieldLogger) TableOpt {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithHandRanker sets the ranker used when Showdown is given none.
func WithHandRanker(ranker evaluator.HandRanker) TableOpt {
	return func(t *Table) {
		t.ranker = ranker
	}
}
