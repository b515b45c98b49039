// Package pca implements principal component analysis over dense observation
// matrices.
//
// The pipeline is the classic one: standardize the n×p observation matrix,
// compute its p×p sample covariance matrix, decompose it into eigenpairs,
// account the explained variance per component, and project the observations
// onto the top-k eigenvectors. Every step is exported on its own so callers
// can run the pieces independently, and Analyze runs the whole pipeline in
// one call:
//
//	result, err := pca.Analyze(x, pca.WithComponents(2), pca.WithScaling(true))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Ratios)    // variance explained per component
//	fmt.Println(result.Projected) // n×2 coordinates in component space
//
// # Decomposition backends
//
// Two mathematically equivalent backends are available:
//
//   - format.MethodEigen (default): a cyclic Jacobi eigensolver applied to
//     the covariance matrix. Self-contained, deterministic, with a bounded
//     sweep budget.
//   - format.MethodSVD: singular value decomposition of the preprocessed
//     data matrix via gonum, with eigenvalues recovered as σ²/(n−1).
//
// # Preprocessing policy
//
// Both backends share one preprocessing policy: columns are always centered
// (disable with WithCentering(false) only for data that is already
// centered), and unit-variance scaling is opt-in via WithScaling(true).
// Because the policy is applied before either backend runs, the two methods
// agree on the explained-variance split within numerical tolerance.
//
// # Determinism
//
// Eigenpairs are sorted by descending eigenvalue with ties broken by the
// original column order, and each eigenvector's sign is fixed so that its
// largest-magnitude entry is positive. Repeated runs over the same input
// produce identical results.
//
// All operations are pure functions over their inputs; the package holds no
// state and needs no synchronization. AnalyzeEach runs independent analyses
// concurrently, which is the only concurrency the package uses.
package pca
