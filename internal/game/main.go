package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("HUNT_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	// World generation.
	terrain := NewTerrain(TerrainWidth, TerrainHeight, TerrainScale, TerrainOctaves, int64(seed))
	decor := GenerateDecor(terrain, seed^0xDEC0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}
	rend.UploadTerrain(terrain.MeshData())
	rend.UploadDecor(BuildDecorMesh(decor))

	// Systems.
	bus := NewEventBus()
	animals := NewAnimalSystem(seed ^ 0xFA0A)
	particles := NewParticleSystem(MaxParticles)
	weather := NewWeatherSystem(seed^0x57A7, bus)
	day := NewDayCycle()
	collider := NewCollisionManager()
	session := NewSession()
	ui := NewUI()
	player := NewPlayer()
	cam := NewCamera()
	input := NewInput()
	fxRand := NewRand(seed ^ 0xF00D)

	playSfx := func(kind SoundKind) {
		if ui.Settings.SoundOn {
			PlaySound(kind)
		}
	}

	worldBounds := RectF{
		X0: -terrain.HalfExtentX(), Y0: -terrain.HalfExtentY(),
		X1: terrain.HalfExtentX(), Y1: terrain.HalfExtentY(),
	}

	// Hits resolve before the callback runs, so a dead state here means
	// this shot was the killing one.
	collider.AddHitCallback(func(pr *Projectile, a *Animal) {
		bus.Publish(Event{Type: EventAnimalHit, Species: a.Species})
		for i := 0; i < 12; i++ {
			particles.Add(Particle{
				Pos:     Vec3{X: a.Pos.X, Y: a.Pos.Y, Z: a.Pos.Z + a.HitRadius},
				Vel:     Vec3{X: fxRand.RangeF(-3, 3), Y: fxRand.RangeF(-3, 3), Z: fxRand.RangeF(1, 5)},
				Size:    2.5,
				MaxLife: 0.8,
				Col:     Palette.Blood,
				Kind:    ParticleBlood,
			})
		}
		if a.IsDead() {
			bus.Publish(Event{Type: EventAnimalKilled, Species: a.Species, Score: a.Score})
		}
	})

	bus.Subscribe(EventAnimalHit, func(Event) {
		session.RecordHit()
		playSfx(SoundHit)
	})
	bus.Subscribe(EventAnimalKilled, func(e Event) {
		session.RecordKill(e.Score)
		playSfx(SoundKill)
		ui.PushMessage(fmt.Sprintf("%s DOWN +%d", e.Species.String(), e.Score))
		if session.ObjectiveMet() {
			bus.Publish(Event{Type: EventObjectiveDone})
		}
	})
	bus.Subscribe(EventWeatherChanged, func(e Event) {
		ui.PushMessage("WEATHER: " + e.Weather.String())
		if e.Weather == WeatherRain && ui.Settings.SoundOn {
			StartRainLoop()
		} else {
			StopRainLoop()
		}
	})
	bus.Subscribe(EventLightning, func(Event) {
		playSfx(SoundThunder)
	})

	startGame := func() {
		session.StartGame()
		player.Reset()
		player.Pos = Vec3{X: 0, Y: -6}
		player.Pos.Z = terrain.HeightAt(player.Pos.X, player.Pos.Y)
		player.Yaw = math.Pi / 2
		animals.Reset()
		animals.SpawnInitial(terrain)
		particles.Clear()
		weather.Reset()
		StopRainLoop()
		day.Reset()
		ui.ClearMessages()
		ui.PushMessage(fmt.Sprintf("BAG %d ANIMALS", session.Objective))
	}

	endGame := func(won bool) {
		session.GameOver(won)
		ui.SetScreen(ScreenGameOver)
		StopRainLoop()
		playSfx(SoundGameOver)
	}

	menuNav := func() (selected bool) {
		if input.JustPressed(window, glfw.KeyUp) || input.JustPressed(window, glfw.KeyW) {
			ui.MoveCursor(-1)
			playSfx(SoundMenuSelect)
		}
		if input.JustPressed(window, glfw.KeyDown) || input.JustPressed(window, glfw.KeyS) {
			ui.MoveCursor(1)
			playSfx(SoundMenuSelect)
		}
		if input.JustPressed(window, glfw.KeyLeft) || input.JustPressed(window, glfw.KeyA) {
			ui.AdjustSetting(-1)
		}
		if input.JustPressed(window, glfw.KeyRight) || input.JustPressed(window, glfw.KeyD) {
			ui.AdjustSetting(1)
		}
		if input.JustPressed(window, glfw.KeyEnter) || input.JustPressed(window, glfw.KeySpace) {
			playSfx(SoundMenuSelect)
			return true
		}
		return false
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		cam.Aspect = float64(fbW) / float64(fbH)

		switch session.State {
		case StateMenu:
			input.SetCaptured(window, false)
			if menuNav() {
				switch ui.Screen {
				case ScreenMain:
					switch ui.Cursor {
					case 0:
						startGame()
					case 1:
						ui.SetScreen(ScreenSettings)
					case 2:
						window.SetShouldClose(true)
					}
				case ScreenSettings:
					if ui.Cursor == 3 {
						ui.SetScreen(ScreenMain)
					} else {
						ui.AdjustSetting(1)
					}
				}
			}
			if input.JustPressed(window, glfw.KeyEscape) {
				if ui.Screen == ScreenSettings {
					ui.SetScreen(ScreenMain)
				} else {
					window.SetShouldClose(true)
				}
			}

		case StatePlaying:
			input.SetCaptured(window, true)
			if input.JustPressed(window, glfw.KeyEscape) {
				session.Pause()
				ui.SetScreen(ScreenPause)
				break
			}

			session.PlayTime += dt
			player.SyncClock(session.PlayTime)

			dx, dy := input.MouseDelta(window)
			if ui.Settings.InvertY {
				dy = -dy
			}
			player.Look(dx*ui.Settings.Sensitivity, dy*ui.Settings.Sensitivity)

			prevPhase := player.WalkPhase()
			wasReloading := player.Weapon.Reloading
			player.Update(dt, MoveInput(window), terrain)
			if wasReloading && !player.Weapon.Reloading {
				ui.PushMessage("RIFLE READY")
			}
			if player.FootstepDue(prevPhase) {
				playSfx(SoundFootstep)
			}

			lmbClicked := input.JustClicked(window, glfw.MouseButtonLeft)
			if window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
				if player.Weapon.CanFire(session.PlayTime) {
					player.Shoot(session.PlayTime)
					session.RecordShot()
					bus.Publish(Event{Type: EventShotFired})
					playSfx(SoundGunshot)
					cam.Kick(0.035)
					muzzle := player.EyePos().Add(player.Forward().Scale(0.9))
					particles.Add(Particle{
						Pos:     muzzle,
						Vel:     player.Forward().Scale(2),
						Size:    4,
						MaxLife: 0.08,
						Col:     Palette.MuzzleHot,
						Kind:    ParticleMuzzle,
					})
				} else if lmbClicked && (player.Weapon.Ammo == 0 || player.Weapon.Reloading) {
					playSfx(SoundDryFire)
				}
			}
			if input.JustPressed(window, glfw.KeyR) {
				if player.Reload(session.PlayTime) {
					playSfx(SoundReload)
				}
			}
			if input.JustPressed(window, glfw.KeyE) {
				player.Eat(30)
				playSfx(SoundEat)
			}
			if input.JustPressed(window, glfw.KeyQ) {
				player.Drink(30)
				playSfx(SoundDrink)
			}

			animals.Update(dt, player.Pos, terrain)
			collider.Resolve(player.Projectiles, animals.Animals, worldBounds, dt)
			animals.RemoveDead()
			weather.Update(dt, particles, player.Pos)
			day.Update(dt)
			particles.Update(dt, terrain)
			ui.Update(dt)
			cam.Update(dt)

			if player.HP.IsDead() {
				endGame(false)
			} else if session.ObjectiveMet() {
				endGame(true)
			}

		case StatePaused:
			input.SetCaptured(window, false)
			if input.JustPressed(window, glfw.KeyEscape) {
				session.Resume()
				break
			}
			if menuNav() {
				switch ui.Cursor {
				case 0:
					session.Resume()
				case 1:
					startGame()
				case 2:
					session.State = StateMenu
					ui.SetScreen(ScreenMain)
					StopRainLoop()
				}
			}

		case StateGameOver:
			input.SetCaptured(window, false)
			if menuNav() {
				switch ui.Cursor {
				case 0:
					startGame()
				case 1:
					session.State = StateMenu
					ui.SetScreen(ScreenMain)
				}
			}
		}

		// Render.
		cam.Follow(player)
		sky := day.SkyColor()
		if weather.Flash > 0 {
			sky = lerpRGB(sky, RGB{R: 255, G: 255, B: 255}, weather.Flash*0.7)
		}
		rend.BeginFrame(cam, fbW, fbH, sky)
		rend.SetLight(day.SunDir(), day.Ambient(), skyTint(day), day.FogColor(), weather.FogDensity(), weather.Flash*0.35)
		rend.DrawTerrain()
		rend.DrawDecor()
		rend.dynBuf = BuildDynamicMesh(rend.dynBuf, animals.Animals)
		rend.DrawDynamic(rend.dynBuf)
		rend.particleBuf = particles.RenderData(rend.particleBuf)
		rend.DrawParticles(rend.particleBuf)

		switch session.State {
		case StatePlaying:
			ui.RenderHUD(rend, player, session, day, weather, fbW, fbH)
		default:
			ui.RenderMenu(rend, session, fbW, fbH)
		}
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}

	StopRainLoop()
}

// skyTint warms the sun tint near dawn and dusk.
func skyTint(day *DayCycle) RGB {
	e := day.SunElevation()
	warm := clampF(1-e*2.5, 0, 1)
	return lerpRGB(RGB{R: 255, G: 250, B: 240}, RGB{R: 255, G: 200, B: 150}, warm*0.7)
}
