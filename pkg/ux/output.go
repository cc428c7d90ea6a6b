// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"strings"
	"time"

	luxlog "github.com/luxfi/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Logger prints command results. It is set up by the root command.
var Logger *UserLog

// UserLog writes lines meant for the user and mirrors marked lines to the log file
type UserLog struct {
	log    luxlog.Logger
	writer io.Writer
}

func NewUserLog(log luxlog.Logger, userwriter io.Writer) *UserLog {
	return &UserLog{
		log:    log,
		writer: userwriter,
	}
}

// PrintToUser prints one line to the user writer without logging it
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	_, _ = fmt.Fprintln(ul.writer, fmt.Sprintf(msg, args...))
}

// RedXToUser prints a failed line and logs it as an error
func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	line := "✗ " + fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, line)
	ul.log.Error(line)
}

// GreenCheckmarkToUser prints a succeeded line and logs it
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	line := "✓ " + fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, line)
	ul.log.Info(line)
}

// StepTracker prints one long running step and how long it took
type StepTracker struct {
	ul    *UserLog
	now   func() time.Time
	name  string
	start time.Time
}

func NewStepTracker(ul *UserLog) *StepTracker {
	return &StepTracker{
		ul:  ul,
		now: time.Now,
	}
}

func (st *StepTracker) Start(name string) {
	st.name = name
	st.start = st.now()
	st.ul.PrintToUser("%s...", name)
}

func (st *StepTracker) Elapsed() time.Duration {
	return st.now().Sub(st.start)
}

// Complete ends the step, [detail] is appended when set
func (st *StepTracker) Complete(detail string) {
	line := fmt.Sprintf("%s (%.1fs)", st.name, st.Elapsed().Seconds())
	if detail != "" {
		line += " - " + detail
	}
	st.ul.GreenCheckmarkToUser("%s", line)
}

func (st *StepTracker) Failed(reason string) {
	st.ul.RedXToUser("%s (%.1fs) - FAILED: %s", st.name, st.Elapsed().Seconds(), reason)
}

// ConvertToStringWithThousandSeparator renders 1234567 as 1_234_567
func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}
