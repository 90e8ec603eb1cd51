// Package database manages the optional relational database used for user
// snapshots.
//
// It uses GORM with either the MySQL driver (shared deployments) or the SQLite
// driver (single binary, tests). The connection is optional: when it is not
// configured or fails, the application keeps serving live data without the
// snapshot fallback.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("snapshot database unavailable", zap.Error(err))
//	}
package database
