package registry_test

import (
	"bytes"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/registry"
)

type snapshot map[algo.Kind]algo.RenderState

func snapshotAll(r *registry.Registry) snapshot {
	s := snapshot{}
	for _, k := range r.Kinds() {
		s[k] = r.Engine(k).Render()
	}
	return s
}

var _ = Describe("Registry", func() {
	var r *registry.Registry

	BeforeEach(func() {
		r = registry.New(12, registry.WithRand(rand.New(rand.NewSource(9))))
	})

	It("holds one independent engine per algorithm", func() {
		Expect(r.Kinds()).To(Equal(algo.Kinds()))
		for _, k := range r.Kinds() {
			e := r.Engine(k)
			Expect(e).NotTo(BeNil())
			Expect(e.Kind()).To(Equal(k))
			Expect(e.Values()).To(HaveLen(12))
		}
		Expect(r.Active()).To(Equal(algo.Selection))
	})

	Describe("Select", func() {
		It("switches the active engine without touching any state", func() {
			before := snapshotAll(r)
			Expect(r.Select(algo.Gnome)).To(Succeed())
			Expect(r.Active()).To(Equal(algo.Gnome))
			Expect(snapshotAll(r)).To(Equal(before))
		})

		It("resumes an engine where it left off", func() {
			Expect(r.Select(algo.Bubble)).To(Succeed())
			Expect(r.StepActive(7)).To(Succeed())
			progress := r.RenderActive()

			Expect(r.Select(algo.Insertion)).To(Succeed())
			Expect(r.StepActive(3)).To(Succeed())
			Expect(r.Select(algo.Bubble)).To(Succeed())

			Expect(r.RenderActive()).To(Equal(progress))
			Expect(r.RenderActive().Stats.Steps).To(Equal(7))
		})

		It("rejects unknown kinds and leaves everything unchanged", func() {
			Expect(r.Select(algo.Insertion)).To(Succeed())
			before := snapshotAll(r)

			err := r.Select(algo.Kind(99))
			Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))
			Expect(r.Active()).To(Equal(algo.Insertion))
			Expect(snapshotAll(r)).To(Equal(before))
		})

		It("rejects unknown names", func() {
			before := snapshotAll(r)
			Expect(r.SelectName("nonexistent")).To(MatchError(registry.ErrUnknownAlgorithm))
			Expect(r.Active()).To(Equal(algo.Selection))
			Expect(snapshotAll(r)).To(Equal(before))
		})

		It("accepts names in any common spelling", func() {
			Expect(r.SelectName("Gnome-Sort")).To(Succeed())
			Expect(r.Active()).To(Equal(algo.Gnome))
		})

		It("cycles through every algorithm with Next", func() {
			seen := []algo.Kind{}
			for range algo.Kinds() {
				seen = append(seen, r.Next())
			}
			Expect(seen).To(Equal([]algo.Kind{algo.Bubble, algo.Insertion, algo.Gnome, algo.Selection}))
		})
	})

	Describe("StepActive", func() {
		It("advances only the active engine", func() {
			before := snapshotAll(r)
			Expect(r.StepActive(5)).To(Succeed())

			after := snapshotAll(r)
			Expect(after[algo.Selection].Stats.Steps).To(Equal(5))
			for _, k := range []algo.Kind{algo.Bubble, algo.Insertion, algo.Gnome} {
				Expect(after[k]).To(Equal(before[k]))
			}
		})

		It("is equivalent to the same number of single steps", func() {
			other := registry.New(12, registry.WithRand(rand.New(rand.NewSource(9))))

			Expect(r.StepActive(20)).To(Succeed())
			for i := 0; i < 20; i++ {
				Expect(other.StepActive(1)).To(Succeed())
			}
			Expect(other.RenderActive()).To(Equal(r.RenderActive()))
		})

		It("rejects counts below one", func() {
			before := snapshotAll(r)
			Expect(r.StepActive(0)).To(MatchError(registry.ErrInvalidCount))
			Expect(r.StepActive(-3)).To(MatchError(registry.ErrInvalidCount))
			Expect(snapshotAll(r)).To(Equal(before))
		})

		It("sorts every algorithm given enough steps", func() {
			for _, k := range r.Kinds() {
				Expect(r.Select(k)).To(Succeed())
				Expect(r.StepActive(algo.MaxSteps(12))).To(Succeed())
				state := r.RenderActive()
				Expect(state.Done).To(BeTrue())
				Expect(state.Values()).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))
			}
		})
	})

	Describe("ResetActive", func() {
		It("resets only the active engine", func() {
			Expect(r.Select(algo.Gnome)).To(Succeed())
			Expect(r.StepActive(4)).To(Succeed())
			Expect(r.Select(algo.Bubble)).To(Succeed())
			Expect(r.StepActive(6)).To(Succeed())
			gnome := r.Engine(algo.Gnome).Render()

			r.ResetActive()

			Expect(r.RenderActive().Stats).To(Equal(algo.Stats{}))
			Expect(r.RenderActive().Done).To(BeFalse())
			Expect(r.Engine(algo.Gnome).Render()).To(Equal(gnome))
		})
	})

	Describe("Apply", func() {
		It("maps driver events onto registry operations", func() {
			Expect(r.Apply(registry.SelectCmd(algo.Insertion))).To(Succeed())
			Expect(r.Active()).To(Equal(algo.Insertion))

			Expect(r.Apply(registry.RepeatCmd(2))).To(Succeed())
			Expect(r.Repeat()).To(Equal(3))

			Expect(r.Apply(registry.StepCmd(0))).To(Succeed())
			Expect(r.RenderActive().Stats.Steps).To(Equal(3))

			Expect(r.Apply(registry.StepCmd(2))).To(Succeed())
			Expect(r.RenderActive().Stats.Steps).To(Equal(5))

			Expect(r.Apply(registry.ResetCmd())).To(Succeed())
			Expect(r.RenderActive().Stats.Steps).To(Equal(0))

			Expect(r.Apply(registry.NextCmd())).To(Succeed())
			Expect(r.Active()).To(Equal(algo.Gnome))
		})

		It("clamps the repeat count", func() {
			small := registry.New(4, registry.WithMaxRepeat(5), registry.WithRepeat(3))
			Expect(small.Repeat()).To(Equal(3))
			Expect(small.Apply(registry.RepeatCmd(-10))).To(Succeed())
			Expect(small.Repeat()).To(Equal(1))
			Expect(small.Apply(registry.RepeatCmd(100))).To(Succeed())
			Expect(small.Repeat()).To(Equal(5))
		})

		It("rejects unsupported operations", func() {
			Expect(r.Apply(registry.Command{Op: registry.Op(42)})).To(HaveOccurred())
		})
	})

	Describe("logging", func() {
		It("reports rejected commands", func() {
			var buf bytes.Buffer
			log := logrus.New()
			log.SetOutput(&buf)
			log.SetLevel(logrus.DebugLevel)

			lr := registry.New(4, registry.WithLogger(log))
			Expect(lr.SelectName("bogo")).NotTo(Succeed())
			Expect(buf.String()).To(ContainSubstring("rejected selection"))
			Expect(buf.String()).To(ContainSubstring("bogo"))
		})
	})
})
