package steps

import (
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// sharedPlanningContext is the state shared by the inline and stored group steps:
// the document assembled from the Given tables and the outcome of the last resolution
type sharedPlanningContext struct {
	doc    bookmark.Document
	report *planning.ResolutionReport
	err    error
}

var shared = &sharedPlanningContext{}

func (s *sharedPlanningContext) reset() {
	s.doc = bookmark.Document{Name: "scenario"}
	s.report = nil
	s.err = nil
}
