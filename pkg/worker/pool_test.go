package worker_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/worker"
)

var _ = Describe("Pool", func() {
	var pool *worker.Pool

	AfterEach(func() {
		if pool != nil {
			pool.Release()
		}
	})

	It("should run every submitted task before Wait returns", func() {
		var err error
		pool, err = worker.NewPool("test", 4)
		Expect(err).NotTo(HaveOccurred())

		var done atomic.Int32
		for i := 0; i < 50; i++ {
			Expect(pool.Submit(context.Background(), func(ctx context.Context) {
				done.Add(1)
			})).To(Succeed())
		}
		pool.Wait()

		Expect(done.Load()).To(Equal(int32(50)))
	})

	It("should never run more tasks than its size", func() {
		var err error
		pool, err = worker.NewPool("test", 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.Cap()).To(Equal(2))

		var (
			mu      sync.Mutex
			running int
			peak    int
		)
		for i := 0; i < 10; i++ {
			Expect(pool.Submit(context.Background(), func(ctx context.Context) {
				mu.Lock()
				running++
				if running > peak {
					peak = running
				}
				mu.Unlock()

				time.Sleep(5 * time.Millisecond)

				mu.Lock()
				running--
				mu.Unlock()
			})).To(Succeed())
		}
		pool.Wait()

		Expect(peak).To(BeNumerically("<=", 2))
	})

	It("should clamp a non-positive size to one worker", func() {
		var err error
		pool, err = worker.NewPool("test", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.Cap()).To(Equal(1))
	})

	It("should refuse submissions after cancellation", func() {
		var err error
		pool, err = worker.NewPool("test", 1)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var ran atomic.Bool
		err = pool.Submit(ctx, func(ctx context.Context) { ran.Store(true) })
		Expect(err).To(MatchError(context.Canceled))
		pool.Wait()
		Expect(ran.Load()).To(BeFalse())
	})

	It("should skip queued tasks once the context is cancelled", func() {
		var err error
		pool, err = worker.NewPool("test", 1)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		Expect(pool.Submit(context.Background(), func(context.Context) {
			time.Sleep(20 * time.Millisecond)
			cancel()
		})).To(Succeed())

		// blocks until the first task frees the only worker
		var ran atomic.Bool
		err = pool.Submit(ctx, func(context.Context) { ran.Store(true) })
		if err != nil {
			Expect(err).To(MatchError(context.Canceled))
		}
		pool.Wait()

		Expect(ran.Load()).To(BeFalse())
	})

	It("should keep working after a task panics", func() {
		var err error
		pool, err = worker.NewPool("test", 1)
		Expect(err).NotTo(HaveOccurred())

		Expect(pool.Submit(context.Background(), func(ctx context.Context) {
			panic("boom")
		})).To(Succeed())

		var ran atomic.Bool
		Expect(pool.Submit(context.Background(), func(ctx context.Context) {
			ran.Store(true)
		})).To(Succeed())
		pool.Wait()

		Expect(ran.Load()).To(BeTrue())
	})
})
