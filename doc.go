// Package credrisk is a small scoring core for home-equity loan default
// prediction.
//
// The module takes a cleaned tabular dataset of loan applications, builds a
// numeric design matrix with an intercept column, standardizes it with
// training-set statistics, fits a binary logistic regression by full-batch
// gradient descent, and evaluates the fitted model with threshold metrics and
// a rank-based AUC.
//
// Packages:
//
//   - dataset: records, labels, CSV loading, design-matrix construction
//   - preprocessing: StandardScaler with explicit, immutable scaling params
//   - linear: the gradient-descent logistic regression classifier
//   - metrics: confusion counts, accuracy, sensitivity, specificity, AUC
//   - core/model: estimator state management and shared interfaces
//   - pkg/errors, pkg/log: structured errors and logging
//
// A complete pipeline is in examples/hmeq.
package credrisk
