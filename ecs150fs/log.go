package ecs150fs

import "github.com/sirupsen/logrus"

// logger is the package-level structured logger used at mount/unmount/
// format boundaries. The read/write hot path never logs (spec.md §1
// excludes a logging/tracing facility from the core's scope); this is
// ordinary library hygiene around the operations that change durable
// state, the same role logrus plays for the teacher's dependency set.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the logger used for mount/unmount/format
// diagnostics. Passing nil restores the standard logrus logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger = logrus.StandardLogger()
		return
	}
	logger = l
}
