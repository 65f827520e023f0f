package services

import "errors"

// Spin adjudication failure taxonomy. All of these except
// ErrLedgerWriteFailed and ErrInternalSelection are expected user-facing
// outcomes and are not logged as application errors. ErrCapacityRace is
// the only one the client is asked to retry, by resubmitting the whole
// spin so eligibility and selection run again against fresh state.
var (
	// ErrCampaignNotFound means the slug resolves to no campaign.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignUnavailable means the campaign is inactive or outside
	// its start/end window.
	ErrCampaignUnavailable = errors.New("campaign is expired or inactive")

	// ErrQuotaExceeded means the phone has used all its spins for the campaign.
	ErrQuotaExceeded = errors.New("maximum spins reached for this number")

	// ErrNoPrizeAvailable means nothing is capacity-eligible on a first spin.
	ErrNoPrizeAvailable = errors.New("no prizes available at the moment")

	// ErrNoNewPrizesAvailable means every remaining capacity-eligible
	// offer has already been won by this phone.
	ErrNoNewPrizesAvailable = errors.New("no new prizes available, all offers already won")

	// ErrCapacityRace means a concurrent spin consumed the selected
	// offer's last redemption slot between selection and the ledger write.
	ErrCapacityRace = errors.New("prize availability changed, please spin again")

	// ErrLedgerWriteFailed means the redemption counter was committed but
	// the spin log append failed. The counter and the ledger now disagree
	// and an operator must reconcile them.
	ErrLedgerWriteFailed = errors.New("spin log write failed after redemption was committed")

	// ErrInternalSelection means the weighted walk terminated without a
	// winner despite a positive total weight. This is a logic defect,
	// never an expected condition.
	ErrInternalSelection = errors.New("weighted selection found no winner")
)
