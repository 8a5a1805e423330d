package worker

// Log Messages - Worker Pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
)

// Log Messages - Energy Regeneration
const (
	LogMsgEnergyRegenCompleted = "Energy regeneration sweep completed"
	LogMsgEnergyRegenFailed    = "Energy regeneration sweep failed"
)

// EnergyRegenJobName identifies the regeneration job in logs
const EnergyRegenJobName = "energy_regen"
