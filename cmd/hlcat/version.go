package main

const _version = "0.1.0"
