package main

func main() {
	if err := Execute(); err != nil {
		fail(err)
	}
}
