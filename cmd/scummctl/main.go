// Command scummctl decompiles and inspects encoded game resource archives.
package main

func main() {
	execute()
}
