package utils

import (
	"encoding/binary"
	"fmt"
	"os"
)

func WriteBinary[T any](filename string, data []T) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	err = binary.Write(file, binary.LittleEndian, data)
	if err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}

	return nil
}

func WriteTxt[V, T any](filename string, data []T, f func(T) V) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	for _, element := range data {
		_, err := fmt.Fprintln(file, f(element))
		if err != nil {
			return fmt.Errorf("failed to write file: %v", err)
		}
	}

	return nil
}
