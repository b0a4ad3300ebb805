package main

import (
	"os"

	"github.com/kf5131/todo"
	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	logEntry := mustSessionLogEntry()

	cfg, err := loadConfig(configFile)
	if err != nil {
		logEntry.WithField("cause", err).Warning("Could not read config, using defaults")
	}
	log.SetLevel(cfg.level)

	list := todo.LoadOrEmpty(cfg.File)
	session, err := todo.NewSession(list, cfg.File, todo.WithLogEntry(logEntry))
	if err != nil {
		logEntry.WithField("cause", err).Fatal("Could not create session")
	}
	if err := session.Run(); err != nil {
		logEntry.WithFields(log.Fields{
			"path":  cfg.File,
			"cause": err,
		}).Fatal("Tasks not saved")
	}
}

// mustSessionLogEntry returns a log entry tagged with an id unique to this run, so that the lines of two runs
// sharing a log can be told apart.
func mustSessionLogEntry() *log.Entry {
	u, err := uuid.NewV4()
	if err != nil {
		log.WithField("cause", err).Fatal("Could not generate session id")
	}
	return log.WithField("session", u.String())
}
