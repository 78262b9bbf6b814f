// Package glide is a property tweening engine for [Ebitengine] games and
// any other frame-driven Go program.
//
// A tween moves one or more properties of a target from their current
// values to end values over a duration, shaped by an easing function from
// package [github.com/phanxgames/glide/ease]. Values are blended by the
// interpolators in [github.com/phanxgames/glide/lerp].
//
// # Quick start
//
// Everything a set of tweens shares lives in an [Animator]. Create one,
// start tweens on it, and call [Animator.Tick] once per frame:
//
//	anim := glide.NewAnimator(glide.Config{Clock: &glide.FrameClock{}})
//	hero := glide.NewSprite("hero", img)
//
//	tw, err := anim.AddTween(hero, "x", 300.0, 0.5, ease.Cubic.Out, 0)
//	if err != nil {
//		log.Fatal(err) // unknown property name
//	}
//	tw.OnComplete(func(t *glide.Tween, _ float64) { log.Println("arrived") })
//
// [Run] opens a window and drives an animator and a [Stage] of sprites:
//
//	stage := &glide.Stage{}
//	stage.Add(hero)
//	glide.Run(anim, stage, glide.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call Tick from
// Update, or wrap everything with [NewGame].
//
// # Properties
//
// Properties are named by string or by [Property] handle. Strings resolve
// through the animator's [Registry]: first as shortcuts for handles (the
// [Sprite] properties "x", "y", "scalex", "scaley", "rotation", "alpha",
// "color" and "geom" are built in), then as named strategies such as
// "autoalpha". An unknown name is the one error AddTween returns.
//
// A handle resolves to the strategy registered for it, else to the strategy
// registered for the end value's type, else to a numeric fallback. Any type
// implementing [PropertyTarget], such as [Bag], can be animated through the
// type strategies.
//
// # Exclusivity
//
// Each (target, property) pair is driven by at most one tween. A new
// undelayed tween takes its properties from older tweens immediately; a
// delayed one takes them on its first tick after the delay.
//
// # Groups, timers and presets
//
// [Group] raises one completion for many tweens. [Animator.After] and
// [Animator.OnFrame] run callbacks on the same clock. [LoadPresets] reads
// reusable tweens and custom easings from YAML for [Animator.Play].
//
// Lifecycle events can be forwarded to an ECS through [EventStore]; the
// glide/ecs package provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package glide
