package lesson

import (
	"github.com/codelane/coderoom/internal/session"
)

// lessonLoadedMsg is sent when the session controller finished loading.
type lessonLoadedMsg struct {
	err error
}

// verdictMsg is sent when an Advance call completes.
type verdictMsg struct {
	result session.Result
	err    error
}

// submittedMsg is sent when an explicit Submit call completes.
type submittedMsg struct {
	err error
}
