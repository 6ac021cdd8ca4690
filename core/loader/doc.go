// Package loader provides the feature loading system.
//
// Each HTTP feature implements the Feature interface and registers its own
// routes when loaded. The Manager keeps features in registration order and
// loads the enabled ones.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(pairs.NewFeature(...))
//	mgr.Register(comparison.NewFeature(...))
//	if err := mgr.LoadAll(app); err != nil {
//	    logg.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
