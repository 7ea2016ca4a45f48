package model

// VolatilityResult summarizes volume dispersion over a trailing window.
type VolatilityResult struct {
	MeanVolume     float64 `json:"mean_volume"`
	StdDev         float64 `json:"std_dev"`
	Coefficient    float64 `json:"coefficient_of_variation"`
	Classification string  `json:"classification"`
	DataPoints     int     `json:"data_points"`
}

// CorrelationResult summarizes the return correlation of a pool's two
// tokens and the impermanent-loss risk it implies.
type CorrelationResult struct {
	Correlation         float64 `json:"correlation"`
	Classification      string  `json:"classification"`
	ImpermanentLossRisk string  `json:"impermanent_loss_risk"`
	SampleSize          int     `json:"sample_size"`
	StablePair          bool    `json:"stable_pair"`
}
