// Package di exposes YAML configuration documents through Uber's Fx
// dependency injection framework.
//
// NewModule loads a document at application wiring time and provides it
// under a named tag, so several configuration files can coexist in one
// container:
//
//	app := fx.New(
//	    di.NewModule("app", "config/app.yaml",
//	        di.WithOverrides(yamlfile.Mapping{{Key: "env", Value: "prod"}}),
//	        di.WithRequiredKeys("service.url"),
//	    ),
//	    di.Provide[ServerConfig]("app", "server"),
//	    fx.Invoke(run),
//	)
//
// Load failures, missing required keys, and section validation errors all
// surface as Fx construction errors.
package di
