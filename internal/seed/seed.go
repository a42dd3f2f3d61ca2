// ABOUTME: Initial dataset loaded when the storage backend is empty.
// ABOUTME: Two reference sessions: Fuji practice and Suzuka qualifying.
package seed

import "github.com/harperreed/setuplog/internal/models"

// Sheets returns the seed dataset. Each call builds fresh values, so
// callers own what they receive.
func Sheets() []*models.SetupSheet {
	f := models.Float
	sheets := []*models.SetupSheet{
		{
			ID:          "session-20240715-fuji-01",
			Vehicle:     "RS3 LMS TCR",
			TrackName:   "富士スピードウェイ",
			DateTime:    "2024-07-15T13:00",
			Driver:      "山田 太郎",
			SessionType: "練習走行1",
			Environment: models.Environment{
				Weather:   "晴れ",
				AirTemp:   f(28),
				TrackTemp: f(45),
				Humidity:  f(65),
				Pressure:  f(1012),
			},
			SetupBefore: models.Setup{
				Tires: models.Tires{
					Brand:    "Bridgestone",
					Compound: "ソフト",
					Mileage:  f(50),
					Pressure: models.PressureSet{FL: f(195), FR: f(195), RL: f(190), RR: f(190)},
				},
				Engine: models.Engine{
					OilBrand:     "Mobil 1",
					OilViscosity: "0W-40",
					OilMileage:   f(150),
				},
				Fuel: f(100),
				Suspension: &models.Suspension{
					RideHeight: models.RideHeight{Front: f(55), Rear: f(60)},
					Dampers: models.DamperSet{
						FL: models.Damper{Bump: f(8), Rebound: f(10)},
						FR: models.Damper{Bump: f(8), Rebound: f(10)},
						RL: models.Damper{Bump: f(6), Rebound: f(8)},
						RR: models.Damper{Bump: f(6), Rebound: f(8)},
					},
				},
			},
			SetupAfter: models.Setup{
				Tires: models.Tires{
					Pressure: models.PressureSet{FL: f(225), FR: f(228), RL: f(220), RR: f(222)},
				},
			},
			DriverNotes: models.DriverNotes{
				FreeText: "3コーナーの出口でアンダーステアが強い。次回はフロントの減衰を2クリック締めることを検討。",
				CornerBalance: models.CornerBalance{
					LowSpeed:  models.PhaseBalance{Entry: models.BalanceNeutral, Mid: models.BalanceUnder, Exit: models.BalanceNeutral},
					MidSpeed:  models.PhaseBalance{Entry: models.BalanceNeutral, Mid: models.BalanceNeutral, Exit: models.BalanceOver},
					HighSpeed: models.PhaseBalance{Entry: models.BalanceNeutral, Mid: models.BalanceNeutral, Exit: models.BalanceNeutral},
				},
			},
		},
		{
			ID:          "session-20240716-suzuka-01",
			Vehicle:     "Roadster",
			TrackName:   "鈴鹿サーキット",
			DateTime:    "2024-07-16T10:30",
			Driver:      "鈴木 一郎",
			SessionType: "予選",
			Environment: models.Environment{
				Weather:   "曇り",
				AirTemp:   f(24),
				TrackTemp: f(33),
				Humidity:  f(75),
				Pressure:  f(1008),
			},
			SetupBefore: models.Setup{
				Tires: models.Tires{
					Brand:    "Michelin",
					Compound: "スーパーソフト",
					Mileage:  f(10),
					Pressure: models.PressureSet{FL: f(190), FR: f(190), RL: f(185), RR: f(185)},
				},
				Engine: models.Engine{
					OilBrand:     "Castrol",
					OilViscosity: "5W-50",
					OilMileage:   f(50),
				},
				Fuel: f(30),
			},
			SetupAfter: models.Setup{
				Tires: models.Tires{
					Pressure: models.PressureSet{FL: f(215), FR: f(218), RL: f(210), RR: f(213)},
				},
			},
			DriverNotes: models.DriverNotes{
				FreeText: "アタックラップは完璧に決まった。マシンのバランスは非常に良い。",
			},
		},
	}
	for _, s := range sheets {
		s.Normalize()
	}
	return sheets
}
