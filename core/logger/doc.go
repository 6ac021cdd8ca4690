// Package logger builds the zap loggers used across pair-compare.
//
// The "debug" level selects zap's development config, every other level the
// production config. Format "console" switches to the console encoder with
// colored levels. Entries always use the keys level, time and message.
//
// HTTP code logs through WithRayID so every entry of a request carries the
// ray id set by the rayid middleware. Middleware logs one entry per request.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	app.Use(rayid.New(), logger.Middleware(log))
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Unreadable table, treating as empty", zap.Error(err))
package logger
