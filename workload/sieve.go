package workload

// PrimeSieve counts the primes in [2, n] with the Sieve of Eratosthenes.
func PrimeSieve(n int) int {
	if n < 2 {
		return 0
	}

	isPrime := make([]bool, n+1)
	for i := range isPrime {
		isPrime[i] = true
	}

	for i := 2; i*i <= n; i++ {
		if !isPrime[i] {
			continue
		}

		// Multiples below i*i were marked by smaller primes.
		for j := i * i; j <= n; j += i {
			isPrime[j] = false
		}
	}

	count := 0
	for _, prime := range isPrime[2:] {
		if prime {
			count++
		}
	}

	return count
}
