package resutils

// KindStatistics counts the resources of a single kind
type KindStatistics struct {
	// Total is the number of resources of this kind in the pool
	Total int
	// InUse is the number of resources of this kind with at least one claim
	InUse int
	// Claims is the sum of reference counts across every resource of this kind
	Claims int
	// Shared is the number of resources of this kind with more than one claim
	Shared int
}

func (s *KindStatistics) Clear() {
	s.Total = 0
	s.InUse = 0
	s.Claims = 0
	s.Shared = 0
}

// AddResource records a single resource with the provided reference count
func (s *KindStatistics) AddResource(refCount int) {
	s.Total++
	s.Claims += refCount
	if refCount > 0 {
		s.InUse++
	}
	if refCount > 1 {
		s.Shared++
	}
}

func (s *KindStatistics) AddStatistics(other *KindStatistics) {
	s.Total += other.Total
	s.InUse += other.InUse
	s.Claims += other.Claims
	s.Shared += other.Shared
}

// TransactionStatistics counts acquire and release calls made against a pool
type TransactionStatistics struct {
	AcquireAttempts int
	AcquireFailures int
	Releases        int
	// ContractViolations counts internal contract failures that were reported and then swallowed
	// because the debug_res_utils build tag was not present
	ContractViolations int
}

func (s *TransactionStatistics) Clear() {
	s.AcquireAttempts = 0
	s.AcquireFailures = 0
	s.Releases = 0
	s.ContractViolations = 0
}

func (s *TransactionStatistics) AddStatistics(other *TransactionStatistics) {
	s.AcquireAttempts += other.AcquireAttempts
	s.AcquireFailures += other.AcquireFailures
	s.Releases += other.Releases
	s.ContractViolations += other.ContractViolations
}
