package dashboard

import (
	"context"
	"log"

	"BitMonitor/internal/projection"
)

// SetProjection stores the user's what-if inputs and returns the current
// result. While all three inputs are populated and numeric the
// projection poller runs, refreshing the quotes and recomputing on the
// same fixed period as the price poller; the moment any input is cleared
// the poller stops and the result is dropped.
func (s *Service) SetProjection(in projection.Input) (*projection.Result, bool) {
	s.projMu.Lock()
	s.projInput = in
	complete := in.Complete()
	if !complete {
		s.projRes = nil
	}
	s.projMu.Unlock()

	if complete {
		s.recomputeProjection()
		s.projPoller.Start(s.baseCtx)
		log.Println("[INFO] projection poller activated")
	} else if s.projPoller.Running() {
		s.projPoller.Stop()
		log.Println("[INFO] projection poller deactivated")
	}

	return s.Projection()
}

// ClearProjection drops the inputs and result and stops the poller.
func (s *Service) ClearProjection() {
	s.projMu.Lock()
	s.projInput = projection.Input{}
	s.projRes = nil
	s.projMu.Unlock()

	if s.projPoller.Running() {
		s.projPoller.Stop()
		log.Println("[INFO] projection poller deactivated")
	}
}

// Projection returns the stored inputs and the result, which exists only
// while the inputs are complete.
func (s *Service) Projection() (*projection.Result, bool) {
	s.projMu.Lock()
	defer s.projMu.Unlock()
	if s.projRes == nil {
		return nil, false
	}
	res := *s.projRes
	return &res, true
}

func (s *Service) projectionCycle(ctx context.Context) {
	if err := s.RefreshQuotes(ctx); err != nil {
		log.Printf("[ERROR] projection refresh: %v", err)
		return
	}
	if ctx.Err() != nil {
		return
	}
	s.recomputeProjection()
}

func (s *Service) recomputeProjection() {
	rate, ok := s.currentRate()
	if !ok {
		return
	}

	s.projMu.Lock()
	defer s.projMu.Unlock()
	quantity, futurePrice, presentValue, inputsOK := s.projInput.Parse()
	if !inputsOK {
		s.projRes = nil
		return
	}
	res := projection.Calculate(quantity, futurePrice, rate, presentValue)
	s.projRes = &res
}

// currentRate reads the spot conversion rate from the latest snapshot.
func (s *Service) currentRate() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotes {
		if q.Asset == "Dólar" {
			return q.Value, true
		}
	}
	return 0, false
}
