// Package configsvc resolves one application's configuration from ranked
// sources into a validated, typed snapshot, and lets the caller mutate and
// persist individual keys back to a chosen source.
//
// Precedence, lowest to highest:
//  1. defaults passed to [New]
//  2. home file    <home>/.pi/agent/<app>.config.json
//  3. project file <projectRoot>/.pi/<app>.config.json
//  4. environment  variables prefixed with <APP>_ (dashes become underscores)
//
// The merge is shallow: a top-level key found in a higher layer replaces
// the lower value as a whole. The merged view goes through the validator
// once per resolution and the result is published atomically, so
// [Service.Config] always returns a complete, validated snapshot.
//
// Typical use:
//
//	svc, err := configsvc.New(ctx, "my-tool",
//		configsvc.WithDefaults[Config](models.Document{"logLevel": "info"}),
//		configsvc.WithValidator[Config](validators.Struct[Config]()),
//	)
//	if err != nil {
//		return err
//	}
//	if err = svc.Set(ctx, "logLevel", "debug", models.LayerHome); err != nil {
//		return err
//	}
//	err = svc.Save(ctx, models.LayerHome)
package configsvc
