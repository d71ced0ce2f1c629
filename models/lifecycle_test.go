package models

import "testing"

func TestDefaultLifecycleConfig(t *testing.T) {
	cfg := DefaultLifecycleConfig()

	if cfg.IdleTimeoutMinutes != 30 {
		t.Errorf("IdleTimeoutMinutes = %d, want 30", cfg.IdleTimeoutMinutes)
	}
	if cfg.IdleAction != IdleShutdown {
		t.Errorf("IdleAction = %q, want shutdown", cfg.IdleAction)
	}
	if !cfg.AutoWake {
		t.Error("AutoWake = false, want true")
	}
	if cfg.HeartbeatIntervalSeconds != 300 {
		t.Errorf("HeartbeatIntervalSeconds = %d, want 300", cfg.HeartbeatIntervalSeconds)
	}
	if cfg.MaxDurationHours != nil {
		t.Errorf("MaxDurationHours = %v, want nil", *cfg.MaxDurationHours)
	}
}

func TestLifecyclePresets(t *testing.T) {
	t.Run("quick test", func(t *testing.T) {
		cfg := QuickTestLifecycle()
		if cfg.IdleTimeoutMinutes != 15 {
			t.Errorf("IdleTimeoutMinutes = %d, want 15", cfg.IdleTimeoutMinutes)
		}
		if cfg.IdleAction != IdleShutdown {
			t.Errorf("IdleAction = %q", cfg.IdleAction)
		}
	})

	t.Run("development", func(t *testing.T) {
		cfg := DevelopmentLifecycle()
		if cfg.IdleTimeoutMinutes != 120 {
			t.Errorf("IdleTimeoutMinutes = %d, want 120", cfg.IdleTimeoutMinutes)
		}
		if cfg.IdleAction != IdleHibernate {
			t.Errorf("IdleAction = %q, want hibernate", cfg.IdleAction)
		}
	})

	t.Run("agent task", func(t *testing.T) {
		cfg := AgentTaskLifecycle()
		if cfg.IdleTimeoutMinutes != 60 {
			t.Errorf("IdleTimeoutMinutes = %d, want 60", cfg.IdleTimeoutMinutes)
		}
		if cfg.MaxDurationHours == nil || *cfg.MaxDurationHours != 2 {
			t.Errorf("MaxDurationHours = %v, want 2", cfg.MaxDurationHours)
		}
	})

	t.Run("always on", func(t *testing.T) {
		cfg := AlwaysOnLifecycle()
		if cfg.IdleAction != IdleKeepAlive {
			t.Errorf("IdleAction = %q, want keep_alive", cfg.IdleAction)
		}
		if !cfg.KeepAliveOnPreview {
			t.Error("KeepAliveOnPreview = false, want true")
		}
	})
}

func TestTierLimits(t *testing.T) {
	free := TierLimits["FREE"]
	if free.MaxIdleTimeoutMinutes == nil || *free.MaxIdleTimeoutMinutes != 30 {
		t.Errorf("FREE MaxIdleTimeoutMinutes = %v", free.MaxIdleTimeoutMinutes)
	}
	if free.Hibernate || free.KeepAlive {
		t.Error("FREE tier should not allow hibernate or keep-alive")
	}

	pro := TierLimits["PRO"]
	if !pro.Hibernate {
		t.Error("PRO tier should allow hibernate")
	}
	if pro.KeepAlive {
		t.Error("PRO tier should not allow keep-alive")
	}

	ent := TierLimits["ENTERPRISE"]
	if !ent.Hibernate || !ent.KeepAlive {
		t.Error("ENTERPRISE tier should allow hibernate and keep-alive")
	}
	if ent.MaxIdleTimeoutMinutes != nil {
		t.Errorf("ENTERPRISE MaxIdleTimeoutMinutes = %v, want unlimited", *ent.MaxIdleTimeoutMinutes)
	}
}
