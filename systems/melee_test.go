package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
)

func TestMeleeTryHit_CooldownBlocksRepeatHits(t *testing.T) {
	targets := mintEntities(1)
	m := components.Melee{HitCooldown: 0.5}

	if !MeleeTryHit(&m, targets[0]) {
		t.Fatal("first hit refused")
	}
	// Second hit inside the window must be blocked.
	if MeleeTryHit(&m, targets[0]) {
		t.Error("same target hit twice within cooldown")
	}

	// 0.4s elapsed: still blocked.
	for i := 0; i < 24; i++ {
		MeleeCooldownTick(&m, 1.0/60.0)
	}
	if MeleeTryHit(&m, targets[0]) {
		t.Error("target hit before cooldown elapsed")
	}

	// Past 0.5s: a third attempt lands.
	for i := 0; i < 12; i++ {
		MeleeCooldownTick(&m, 1.0/60.0)
	}
	if !MeleeTryHit(&m, targets[0]) {
		t.Error("hit refused after cooldown elapsed")
	}
}

func TestMeleeTryHit_IndependentPerTarget(t *testing.T) {
	targets := mintEntities(2)
	m := components.Melee{HitCooldown: 0.5}

	if !MeleeTryHit(&m, targets[0]) {
		t.Fatal("first hit refused")
	}
	if !MeleeTryHit(&m, targets[1]) {
		t.Error("cooldown on one target blocked another")
	}
}

func TestMeleePurge_DropsDeadHandles(t *testing.T) {
	targets := mintEntities(2)
	m := components.Melee{HitCooldown: 10}
	MeleeTryHit(&m, targets[0])
	MeleeTryHit(&m, targets[1])

	dead := targets[0]
	MeleePurge(&m, func(e ecs.Entity) bool { return e != dead })

	if _, ok := m.NextHit[targets[0]]; ok {
		t.Error("dead handle survived purge")
	}
	if _, ok := m.NextHit[targets[1]]; !ok {
		t.Error("live handle purged")
	}
}
