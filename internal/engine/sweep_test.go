package engine

import (
	"testing"

	"github.com/focusquest/focusquest/internal/model"
)

func TestSweepNoMissedQuestsIsNoop(t *testing.T) {
	snap := testSnapshot(testQuest("q1", model.QuestTypeWeekly, day(7)))
	snap.Stats.XP = 500

	out, result := sweep(snap, day(3))
	if result.Shielded || result.Report != nil {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if out.Stats.XP != 500 {
		t.Fatalf("expected xp untouched, got %d", out.Stats.XP)
	}
}

func TestSweepShieldCoversWholeBatch(t *testing.T) {
	snap := testSnapshot(
		testQuest("q1", model.QuestTypeDaily, day(1)),
		testQuest("q2", model.QuestTypeWeekly, day(2)),
		testQuest("q3", model.QuestTypeMonthly, day(3)),
	)
	snap.Stats.XP = 300
	snap.Inventory = []string{model.ItemShield}

	out, result := sweep(snap, day(10))
	if !result.Shielded {
		t.Fatal("expected the sweep to be shielded")
	}
	if result.Report != nil {
		t.Fatalf("shielded sweep must not produce a damage report, got %+v", result.Report)
	}
	if len(out.Inventory) != 0 {
		t.Fatalf("expected the shield consumed, inventory %v", out.Inventory)
	}
	if out.Stats.XP != 300 {
		t.Fatalf("expected no xp loss, got %d", out.Stats.XP)
	}
	for _, q := range out.Quests {
		if !q.PenaltyApplied {
			t.Fatalf("quest %s not marked penaltyApplied", q.ID)
		}
		if len(q.Journal) != 1 || q.Journal[0].Text != "Saved by shield" {
			t.Fatalf("quest %s missing mitigation journal entry: %v", q.ID, q.Journal)
		}
	}
}

func TestSweepWithoutShieldDebitsAndReports(t *testing.T) {
	g1 := testQuest("q1", model.QuestTypeDaily, day(1))
	g1.Title = "Sleep early"
	g2 := testQuest("q2", model.QuestTypeWeekly, day(2))
	g2.Title = "Run 5k"
	snap := testSnapshot(g1, g2)
	snap.Stats.XP = 300

	out, result := sweep(snap, day(10))
	if result.Shielded {
		t.Fatal("no shield was in the inventory")
	}
	if result.Report == nil {
		t.Fatal("expected a damage report")
	}
	if result.Report.XPLost != 100 {
		t.Fatalf("expected 100 xp lost, got %d", result.Report.XPLost)
	}
	if len(result.Report.Titles) != 2 || result.Report.Titles[0] != "Sleep early" || result.Report.Titles[1] != "Run 5k" {
		t.Fatalf("unexpected report titles %v", result.Report.Titles)
	}
	if out.Stats.XP != 200 {
		t.Fatalf("expected 200 xp remaining, got %d", out.Stats.XP)
	}
}

func TestSweepClampsXPAtZero(t *testing.T) {
	snap := testSnapshot(
		testQuest("q1", model.QuestTypeDaily, day(1)),
		testQuest("q2", model.QuestTypeDaily, day(1)),
	)
	snap.Stats.XP = 70
	snap.Stats.Level = 2

	out, result := sweep(snap, day(10))
	if result.Report == nil || result.Report.XPLost != 100 {
		t.Fatalf("expected report of 100 xp lost, got %+v", result.Report)
	}
	if out.Stats.XP != 0 {
		t.Fatalf("expected xp clamped to 0, got %d", out.Stats.XP)
	}
	if out.Stats.Level != 2 {
		t.Fatalf("level must never decrease, got %d", out.Stats.Level)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	snap := testSnapshot(testQuest("q1", model.QuestTypeDaily, day(1)))
	snap.Stats.XP = 200

	out, result := sweep(snap, day(10))
	if result.Report == nil || result.Report.XPLost != 50 {
		t.Fatalf("expected first sweep to cost 50 xp, got %+v", result.Report)
	}

	again, result := sweep(out, day(11))
	if result.Shielded || result.Report != nil {
		t.Fatalf("second sweep must be a no-op, got %+v", result)
	}
	if again.Stats.XP != 150 {
		t.Fatalf("expected xp unchanged at 150, got %d", again.Stats.XP)
	}
}

func TestSweepSkipsCompletedQuests(t *testing.T) {
	done := testQuest("q1", model.QuestTypeDaily, day(1))
	done.IsCompleted = true
	snap := testSnapshot(done, testQuest("q2", model.QuestTypeDaily, day(1)))
	snap.Stats.XP = 200

	_, result := sweep(snap, day(10))
	if result.Report == nil || result.Report.XPLost != 50 {
		t.Fatalf("expected only the active quest penalized, got %+v", result.Report)
	}
}
